package storage

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/plotstream/plotstream/series"
	"go.etcd.io/bbolt"
)

func testDB(t *testing.T) *bbolt.DB {
	t.Helper()
	dir, err := ioutil.TempDir("", "reports")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	db, err := OpenDB(path.Join(dir, "data.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSaveAndGetReports(t *testing.T) {
	db := testDB(t)
	base := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		report := &Report{
			Time:        base.Add(time.Duration(i) * time.Minute),
			Duration:    2 * time.Second,
			TotalPoints: 100 * (i + 1),
			TraceCount:  i + 1,
			Stats:       series.Collect(nil),
		}
		if err := SaveReport(db, report); err != nil {
			t.Fatal(err)
		}
	}
	reports, err := GetReports(db, base, base.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 {
		t.Fatal("expected 3 reports, got", len(reports))
	}
	for i, report := range reports {
		if report.TotalPoints != 100*(i+1) {
			t.Fatal("reports out of order")
		}
	}

	// Range queries exclude reports outside the window.
	reports, err = GetReports(db, base.Add(30*time.Second), base.Add(90*time.Second))
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].TraceCount != 2 {
		t.Fatal("range query wrong:", len(reports))
	}
}

func TestGetReportsEmpty(t *testing.T) {
	db := testDB(t)
	reports, err := GetReports(db, time.Unix(0, 0), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 0 {
		t.Fatal("expected no reports")
	}
}

func TestClearReports(t *testing.T) {
	db := testDB(t)
	report := &Report{Time: time.Now().UTC(), TotalPoints: 5}
	if err := SaveReport(db, report); err != nil {
		t.Fatal(err)
	}
	if err := ClearReports(db); err != nil {
		t.Fatal(err)
	}
	reports, err := GetReports(db, time.Unix(0, 0), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 0 {
		t.Fatal("reports not cleared")
	}
}
