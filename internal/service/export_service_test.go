package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

func setupExportService() (ExportService, *testRepos) {
	repos := newTestRepos()
	svc := NewExportService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func seedTimetable(repos *testRepos) string {
	code := "NET-101"
	repos.lab.labs["lab-1"] = &model.Lab{LabID: "lab-1", LabCode: &code, Name: "Networks Lab"}
	repos.classPeriod.periods["period-1"] = &model.ClassPeriod{
		ClassPeriodID: "period-1",
		LabID:         "lab-1",
		Subject:       "Computer Networks",
		DayOfWeek:     1,
		PeriodStart:   "09:00",
		PeriodEnd:     "11:00",
		Recurring:     true,
	}
	repos.classPeriod.periods["period-2"] = &model.ClassPeriod{
		ClassPeriodID: "period-2",
		LabID:         "lab-1",
		Subject:       "Guest Lecture",
		DayOfWeek:     4,
		PeriodStart:   "14:00",
		PeriodEnd:     "16:00",
		Recurring:     false,
	}
	return "lab-1"
}

func TestExportService_Timetable_Success(t *testing.T) {
	svc, repos := setupExportService()
	labID := seedTimetable(repos)

	buf, filename, err := svc.ExportLabTimetable(context.Background(), labID)
	if err != nil {
		t.Fatalf("ExportLabTimetable: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("xlsx buffer must not be empty")
	}
	if filename != "timetable_NET-101.xlsx" {
		t.Errorf("filename = %q", filename)
	}
	// xlsx files are zip archives, starting with PK
	header := buf.Bytes()[:2]
	if header[0] != 0x50 || header[1] != 0x4B {
		t.Error("output is not a valid xlsx (missing PK header)")
	}
}

func TestExportService_Timetable_EmptyLab(t *testing.T) {
	svc, repos := setupExportService()
	repos.lab.labs["lab-1"] = &model.Lab{LabID: "lab-1", Name: "Empty Lab"}

	_, _, err := svc.ExportLabTimetable(context.Background(), "lab-1")
	if !errors.Is(err, ErrExportNoPeriods) {
		t.Fatalf("got %v, want ErrExportNoPeriods", err)
	}
}

func TestExportService_Timetable_LabNotFound(t *testing.T) {
	svc, _ := setupExportService()
	_, _, err := svc.ExportLabTimetable(context.Background(), "missing")
	if !errors.Is(err, ErrLabNotFound) {
		t.Fatalf("got %v, want ErrLabNotFound", err)
	}
}

func TestExportService_Calendar_Success(t *testing.T) {
	svc, repos := setupExportService()
	labID := seedTimetable(repos)

	buf, filename, err := svc.ExportLabCalendar(context.Background(), labID)
	if err != nil {
		t.Fatalf("ExportLabCalendar: %v", err)
	}
	if filename != "timetable_NET-101.ics" {
		t.Errorf("filename = %q", filename)
	}

	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("missing VCALENDAR envelope")
	}
	if strings.Count(content, "BEGIN:VEVENT") != 2 {
		t.Errorf("expected 2 events, got %d", strings.Count(content, "BEGIN:VEVENT"))
	}
	if !strings.Contains(content, "SUMMARY:Computer Networks") {
		t.Error("missing event summary")
	}
	// only the recurring period carries an RRULE
	if strings.Count(content, "RRULE:FREQ=WEEKLY;BYDAY=MO") != 1 {
		t.Error("recurring monday period should carry a weekly RRULE")
	}
	if strings.Contains(content, "BYDAY=TH") {
		t.Error("one-off period must not carry an RRULE")
	}
}

func TestExportService_Calendar_StoredRowsCarrySeconds(t *testing.T) {
	svc, repos := setupExportService()
	labID := seedTimetable(repos)

	// persisted rows arrive through the database scanner with seconds
	stored := scannedPeriod(t, 2, "08:00:00", "09:30:00")
	stored.ClassPeriodID = "period-scanned"
	stored.LabID = labID
	stored.Subject = "Databases"
	stored.Recurring = true
	repos.classPeriod.periods[stored.ClassPeriodID] = &stored

	buf, _, err := svc.ExportLabCalendar(context.Background(), labID)
	if err != nil {
		t.Fatalf("ExportLabCalendar with scanned times: %v", err)
	}

	content := buf.String()
	if strings.Count(content, "BEGIN:VEVENT") != 3 {
		t.Errorf("expected 3 events, got %d", strings.Count(content, "BEGIN:VEVENT"))
	}
	if !strings.Contains(content, "SUMMARY:Databases") {
		t.Error("missing event for the scanned period")
	}
}
