package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
	"github.com/sidd-coder1/Fullstack-LMS/internal/repository"
)

// ── export errors ──

var (
	ErrExportNoPeriods    = errors.New("lab has no class periods to export")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// ExportService renders a lab's weekly timetable as a downloadable file.
//
// Both exports return a buffer plus a suggested filename; the handler
// layer sets the HTTP headers and streams the content.
type ExportService interface {
	// ExportLabTimetable renders the timetable as an Excel (.xlsx) grid,
	// one row per period ordered by day of week then start time.
	ExportLabTimetable(ctx context.Context, labID string) (*bytes.Buffer, string, error)
	// ExportLabCalendar renders the timetable as an iCalendar feed.
	// Recurring periods carry a weekly RRULE.
	ExportLabCalendar(ctx context.Context, labID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (s *exportService) loadPeriods(ctx context.Context, labID string) (*model.Lab, []model.ClassPeriod, error) {
	lab, err := s.repo.Lab.GetByID(ctx, labID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrLabNotFound
		}
		s.logger.Error("lookup lab failed", zap.String("id", labID), zap.Error(err))
		return nil, nil, err
	}

	periods, err := s.repo.ClassPeriod.ListByLab(ctx, labID, nil)
	if err != nil {
		s.logger.Error("list class periods failed", zap.String("lab_id", labID), zap.Error(err))
		return nil, nil, err
	}
	if len(periods) == 0 {
		return nil, nil, ErrExportNoPeriods
	}

	sort.Slice(periods, func(i, j int) bool {
		if periods[i].DayOfWeek != periods[j].DayOfWeek {
			return periods[i].DayOfWeek < periods[j].DayOfWeek
		}
		return periods[i].PeriodStart < periods[j].PeriodStart
	})
	return lab, periods, nil
}

// ────────────────────── Excel timetable ──────────────────────

func (s *exportService) ExportLabTimetable(ctx context.Context, labID string) (*bytes.Buffer, string, error) {
	lab, periods, err := s.loadPeriods(ctx, labID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Timetable"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 28)
	f.SetColWidth(sheetName, "D", "E", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — Weekly Timetable", lab.Name))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	row := 2
	f.SetCellValue(sheetName, cell("A", row), "Day")
	f.SetCellValue(sheetName, cell("B", row), "Time")
	f.SetCellValue(sheetName, cell("C", row), "Subject")
	f.SetCellValue(sheetName, cell("D", row), "Instructor")
	f.SetCellValue(sheetName, cell("E", row), "PC")

	row = 3
	for i := range periods {
		p := &periods[i]
		f.SetCellValue(sheetName, cell("A", row), dayNames[p.DayOfWeek])
		f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s-%s", p.PeriodStart, p.PeriodEnd))
		f.SetCellValue(sheetName, cell("C", row), p.Subject)

		instructor := "-"
		if p.Instructor != nil {
			instructor = p.Instructor.Username
		}
		f.SetCellValue(sheetName, cell("D", row), instructor)

		pcText := "-"
		if p.PC != nil && p.PC.Hostname != nil {
			pcText = *p.PC.Hostname
		} else if p.PC != nil {
			pcText = p.PC.PCID
		}
		f.SetCellValue(sheetName, cell("E", row), pcText)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("timetable_%s.xlsx", labSlug(lab)), nil
}

// ────────────────────── iCalendar feed ──────────────────────

// icsDayCodes maps day_of_week (0=Sunday) to RRULE BYDAY codes.
var icsDayCodes = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

func (s *exportService) ExportLabCalendar(ctx context.Context, labID string) (*bytes.Buffer, string, error) {
	lab, periods, err := s.loadPeriods(ctx, labID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Fullstack-LMS//Lab Timetable//EN")
	cal.SetName(fmt.Sprintf("%s Timetable", lab.Name))

	now := time.Now().UTC()
	for i := range periods {
		p := &periods[i]

		start, err := nextOccurrence(now, p.DayOfWeek, string(p.PeriodStart))
		if err != nil {
			s.logger.Error("parse period time failed",
				zap.String("period_id", p.ClassPeriodID), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
		end, err := nextOccurrence(now, p.DayOfWeek, string(p.PeriodEnd))
		if err != nil {
			return nil, "", ErrExportGenerateFail
		}

		event := cal.AddEvent(p.ClassPeriodID + "@fullstack-lms")
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(p.Subject)
		event.SetLocation(lab.Name)
		if p.Instructor != nil {
			event.SetDescription("Instructor: " + p.Instructor.Username)
		}
		if p.Recurring {
			event.AddRrule("FREQ=WEEKLY;BYDAY=" + icsDayCodes[p.DayOfWeek])
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("timetable_%s.ics", labSlug(lab)), nil
}

// labSlug picks the lab code for filenames, falling back to the id.
func labSlug(lab *model.Lab) string {
	if lab.LabCode != nil && *lab.LabCode != "" {
		return *lab.LabCode
	}
	return lab.LabID
}

// nextOccurrence resolves a (day of week, "HH:MM") slot to its next
// concrete UTC time at or after ref.
func nextOccurrence(ref time.Time, dayOfWeek int, hhmm string) (time.Time, error) {
	tod, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}

	daysAhead := (dayOfWeek - int(ref.Weekday()) + 7) % 7
	date := ref.AddDate(0, 0, daysAhead)
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, time.UTC), nil
}

// ── helpers ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
