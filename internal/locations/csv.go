package locations

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

var csvHeader = []string{"Position", "Title", "PlaceId", "Address", "Latitude", "Longitude"}

// WriteCSV appends the locations to the file at path, writing the header
// row once when the file is still empty.
func WriteCSV(path string, locs []Location) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, l := range locs {
		record := []string{
			strconv.Itoa(l.Position),
			l.Title,
			l.PlaceID,
			l.Address,
			strconv.FormatFloat(l.Latitude, 'f', -1, 64),
			strconv.FormatFloat(l.Longitude, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
