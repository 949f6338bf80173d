package services

import (
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Date", "Region", "Location", "Start", "End", "Tool",
	"Host", "Host number", "Participants",
}

// ExportActivities builds an xlsx workbook with one row per activity,
// ordered the same way the list endpoint returns them.
func ExportActivities() (*excelize.File, error) {
	activities, err := ListActivities()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Activities"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, activity := range activities {
		hostNumber := ""
		if activity.HostNumber != nil {
			hostNumber = *activity.HostNumber
		}

		values := []interface{}{
			activity.Date,
			activity.Region,
			activity.Location,
			activity.StartTime,
			activity.EndTime,
			activity.Tool,
			activity.Host,
			hostNumber,
			activity.ParticipantCount,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
