package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreas returns the first print area defined for each sheet.
func PrintAreas(f *excelize.File) map[string]models.Area {
	result := make(map[string]models.Area)

	for _, dn := range f.GetDefinedName() {
		// Look for _xlnm.Print_Area defined name
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, area, err := parseAreaReference(dn.RefersTo)
		if err != nil || sheetName == "" {
			continue
		}
		if _, ok := result[sheetName]; !ok {
			result[sheetName] = *area
		}
	}

	return result
}

// ParseArea parses a range such as "B2:F40", "$B$2:$F$40" or
// "'Sheet 1'!$B$2:$F$40". The sheet prefix is ignored.
func ParseArea(ref string) (*models.Area, error) {
	_, area, err := parseAreaReference(ref)
	return area, err
}

// parseAreaReference splits an optional sheet prefix from the first range of ref.
func parseAreaReference(ref string) (string, *models.Area, error) {
	// Only the first of a comma separated list is used
	part := strings.TrimSpace(strings.Split(ref, ",")[0])

	var sheetName string
	if idx := strings.LastIndex(part, "!"); idx >= 0 {
		sheetName = strings.Trim(part[:idx], "'")
		part = part[idx+1:]
	}

	area, err := parseRangeToArea(part)
	if err != nil {
		return "", nil, fmt.Errorf("invalid area %q: %w", ref, err)
	}
	return sheetName, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to Area.
func parseRangeToArea(rangeStr string) (*models.Area, error) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected two cells separated by ':'")
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, err
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}

	return &models.Area{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
