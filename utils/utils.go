package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\s]`)

func EnsureDirectory(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %s: %w", dirPath, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", absPath, err)
	}

	return nil
}

func SanitizeFilename(filename string) string {
	filename = strings.TrimSpace(filename)
	filename = invalidFilenameChars.ReplaceAllString(filename, "_")

	if len(filename) > 255 {
		ext := filepath.Ext(filename)
		base := filename[:255-len(ext)]
		filename = base + ext
	}

	if filename == "" {
		filename = "unnamed"
	}

	return filename
}

func GenerateTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// TruncateAddress keeps the first 6 and last 4 characters around "...".
// Short input overlaps rather than being padded.
func TruncateAddress(address string) string {
	runes := []rune(address)
	head := runes[:min(6, len(runes))]
	tail := runes[max(0, len(runes)-4):]
	return string(head) + "..." + string(tail)
}

// FormatFixed renders a decimal string with a fixed number of places.
// Unparseable input renders as NaN.
func FormatFixed(value string, places int32) string {
	d, err := parseDecimal(value)
	if err != nil {
		return "NaN"
	}
	return d.StringFixed(places)
}

// FormatFloatFixed renders a float with a fixed number of places
func FormatFloatFixed(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places)
}

// FormatTokenValue multiplies a token balance by its unit price
func FormatTokenValue(balance string, price float64) string {
	d, err := parseDecimal(balance)
	if err != nil {
		return "NaN"
	}
	return d.Mul(decimal.NewFromFloat(price)).StringFixed(2)
}

// FormatCount adds thousands separators
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatScore drops a trailing .0 so integral scores print as integers
func FormatScore(score float64) string {
	return decimal.NewFromFloat(score).String()
}

func parseDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("empty value")
	}
	return decimal.NewFromString(value)
}
