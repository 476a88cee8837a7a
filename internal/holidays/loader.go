package holidays

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MaxCacheAge is how old the cached file may get before it is reported stale.
const MaxCacheAge = 180 * 24 * time.Hour

// ErrNoYears is returned when the data file holds no usable year.
var ErrNoYears = errors.New("no year data found")

// Decode reads holiday JSON from r.
func Decode(r io.Reader) (Table, error) {
	var data HolidayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse holidays JSON: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoYears
	}

	result := make(Table, len(data))
	for _, year := range data {
		if _, err := strconv.Atoi(year.Year); err != nil {
			continue
		}
		result[year.Year] = year.Holiday
	}
	if len(result) == 0 {
		return nil, ErrNoYears
	}
	return result, nil
}

// LoadFromFile loads holiday data from a JSON file.
func LoadFromFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holidays file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// GetCachePath returns the location of the holidays file in the user cache
// directory.
func GetCachePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "datepick", "holidays.json"), nil
}

// LoadFromCache loads holiday data from the user cache directory.
func LoadFromCache() (Table, error) {
	cachePath, err := GetCachePath()
	if err != nil {
		return nil, err
	}
	return LoadFromFile(cachePath)
}

// IsCacheValid reports whether the cache file exists and is younger than
// MaxCacheAge relative to now.
func IsCacheValid(cachePath string, now time.Time) (bool, error) {
	info, err := os.Stat(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.ModTime().After(now.Add(-MaxCacheAge)), nil
}

// GetHolidayForDate retrieves holiday information for a specific date.
func GetHolidayForDate(data Table, year int, month int, day int) *HolidayInfo {
	if data == nil {
		return nil
	}
	yearData, ok := data[strconv.Itoa(year)]
	if !ok {
		return nil
	}
	entry, ok := yearData[fmt.Sprintf("%02d-%02d", month, day)]
	if !ok || entry == nil {
		return nil
	}
	return &HolidayInfo{
		IsHoliday: entry.Holiday,
		Name:      entry.Name,
	}
}
