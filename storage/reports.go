package storage

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"

	"github.com/plotstream/plotstream/series"
	"github.com/plotstream/plotstream/utils"
	"go.etcd.io/bbolt"
)

var BucketNotFound = errors.New("bucket not found")

const reportsBucket = "loadReports"

// Report records one completed load pass for the history endpoint.
type Report struct {
	Time        time.Time
	Duration    time.Duration
	TotalPoints int
	TraceCount  int
	Stats       series.Stats
}

func getReportsBucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	if tx.Writable() {
		return tx.CreateBucketIfNotExists([]byte(reportsBucket))
	}
	bucket := tx.Bucket([]byte(reportsBucket))
	if bucket == nil {
		return nil, BucketNotFound
	}
	return bucket, nil
}

func SaveReport(db *bbolt.DB, report *Report) error {
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return db.Update(func(tx *bbolt.Tx) error {
		bucket, err := getReportsBucket(tx)
		if err != nil {
			return err
		}
		return bucket.Put(utils.TimeToBytes(report.Time), buf.Bytes())
	})
}

// GetReports returns the reports recorded in [start, end], oldest first.
func GetReports(db *bbolt.DB, start, end time.Time) (reports []*Report, err error) {
	err = db.View(func(tx *bbolt.Tx) error {
		bucket, bucketErr := getReportsBucket(tx)
		if bucketErr == BucketNotFound {
			return nil
		}
		if bucketErr != nil {
			return bucketErr
		}
		cursor := bucket.Cursor()
		startKey := utils.TimeToBytes(start)
		endKey := utils.TimeToBytes(end)
		for key, value := cursor.Seek(startKey); key != nil && bytes.Compare(key, endKey) <= 0; key, value = cursor.Next() {
			report := &Report{}
			decoder := gob.NewDecoder(bytes.NewReader(value))
			if decodeErr := decoder.Decode(report); decodeErr != nil {
				return decodeErr
			}
			reports = append(reports, report)
		}
		return nil
	})
	return
}

func ClearReports(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(reportsBucket)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(reportsBucket))
	})
}
