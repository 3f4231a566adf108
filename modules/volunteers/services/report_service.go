package services

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/sevaops/temple-console/modules/volunteers/domain/report"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

type ReportService struct {
	api *apiclient.Client
}

func NewReportService(api *apiclient.Client) *ReportService {
	return &ReportService{api: api}
}

// Calendar fetches server-computed attendance buckets for the chosen
// granularity and range. Aggregation happens entirely on the backend.
func (s *ReportService) Calendar(ctx context.Context, params *report.Params) ([]report.Bucket, error) {
	f := apiclient.Filter{}
	if params != nil {
		f.Set("period", string(params.Period)).
			Set("from_date", params.FromDate).
			Set("to_date", params.ToDate)
	}
	env, err := s.api.Get(ctx, "/volunteers/reports/attendance", f.Values())
	if err != nil {
		return nil, errors.Wrap(err, "load attendance report")
	}
	if !env.Success {
		return nil, env.Err(http.StatusOK, "load attendance report")
	}
	var buckets []report.Bucket
	if err := env.Decode(&buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

const exportSheet = "Attendance"

// ExportXLSX writes the fetched buckets as a spreadsheet: one summary
// row per bucket followed by its drill-down entries.
func (s *ReportService) ExportXLSX(ctx context.Context, params *report.Params, w io.Writer) error {
	buckets, err := s.Calendar(ctx, params)
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()
	if err := file.SetSheetName(file.GetSheetName(0), exportSheet); err != nil {
		return errors.Wrap(err, "rename export sheet")
	}

	headers := []string{"Date", "Volunteers", "Total hours", "Activity", "Volunteer", "Check-in", "Check-out", "Hours"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(exportSheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, b := range buckets {
		if err := setRow(file, row,
			b.Date.String(), b.VolunteerCount, b.TotalHours.String(), string(b.Activity), "", "", "", "",
		); err != nil {
			return err
		}
		row++
		for _, e := range b.Entries {
			if err := setRow(file, row,
				"", "", "", "", e.VolunteerName, e.CheckIn, e.CheckOut, e.Hours.String(),
			); err != nil {
				return err
			}
			row++
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

func setRow(file *excelize.File, row int, values ...any) error {
	for i, v := range values {
		if v == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(exportSheet, cell, v); err != nil {
			return errors.Wrapf(err, "set cell %s", cell)
		}
	}
	return nil
}
