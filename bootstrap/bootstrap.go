package bootstrap

import (
	"context"
	"fmt"
	"io"
	"time"

	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/recordstore/configuration"
	"github.com/fulldump/recordstore/record"
)

var VERSION = "dev"

// Run populates a collection, times the reference filters, optionally runs
// the self check and a legacy column query. Matches of the legacy query are
// written to w as JSON lines.
func Run(ctx context.Context, c *configuration.Configuration, w io.Writer) error {

	data := record.Populate(c.Prefix, c.Records)

	executions := max(c.Executions, 1)
	avg := 0.0
	for i := 0; i < executions; i++ {
		t0 := time.Now()
		_, err := record.FilterParallel(ctx, data, record.TextFieldA.Match(c.Prefix+"50"), c.Workers)
		if err != nil {
			return fmt.Errorf("filter text: %w", err)
		}
		_, err = record.FilterParallel(ctx, data, record.NumericField.Match(24), c.Workers)
		if err != nil {
			return fmt.Errorf("filter numeric: %w", err)
		}
		avg += time.Since(t0).Seconds()
	}
	avg /= float64(executions)
	fmt.Fprintln(w, "profiler avg:", avg)

	if c.Check {
		err := Check()
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		fmt.Fprintln(w, "check: ok")
	}

	if c.Column == "" {
		return nil
	}

	result, err := record.FindMatchingRecords(data, c.Column, c.Value)
	if err != nil {
		return fmt.Errorf("find matching records: %w", err)
	}

	e := jsontext.NewEncoder(w)
	for i := range result {
		err := json2.MarshalEncode(e, &result[i])
		if err != nil {
			return fmt.Errorf("json encode record: %w", err)
		}
	}

	return nil
}

// Check runs the reference scenario over 1000 "testdata" records.
func Check() error {

	data := record.Populate("testdata", 1000)

	if n := len(record.Filter(data, record.TextFieldA.Match("testdata50"))); n != 11 {
		return fmt.Errorf("text filter: expected 11 records, got %d", n)
	}
	if n := len(record.Filter(data, record.NumericField.Match(24))); n != 10 {
		return fmt.Errorf("numeric filter: expected 10 records, got %d", n)
	}
	if n := len(record.Filter(data, record.IdField.Match(100))); n != 1 {
		return fmt.Errorf("id filter: expected 1 record, got %d", n)
	}

	record.DeleteById(&data, 100)
	if n := len(record.Filter(data, record.IdField.Match(100))); n != 0 {
		return fmt.Errorf("id filter after delete: expected 0 records, got %d", n)
	}
	if len(data) != 999 {
		return fmt.Errorf("delete: expected 999 records, got %d", len(data))
	}

	record.DeleteById(&data, 100)
	if len(data) != 999 {
		return fmt.Errorf("second delete: expected 999 records, got %d", len(data))
	}

	return nil
}
