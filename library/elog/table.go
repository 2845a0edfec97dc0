// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elog

import (
	"os"

	"github.com/emer/etable/etable"
)

// LogTable contains all the data for one log table
type LogTable struct {
	Table        *etable.Table     `desc:"Actual data stored."`
	Meta         map[string]string `desc:"arbitrary meta-data for each table, e.g., hints for plotting"`
	File         *os.File          `view:"-" desc:"File to store the log into."`
	WroteHeaders bool              `view:"-" desc:"true if headers for File have already been written"`
	WroteRows    int               `view:"-" desc:"number of table rows already written to File"`
}

// NewLogTable returns a new LogTable entry for given table, initializing values
func NewLogTable(table *etable.Table) *LogTable {
	lt := &LogTable{Table: table}
	lt.Meta = make(map[string]string)
	return lt
}

// WriteNewRows writes the headers, if not yet written, and then every row
// added to the table since the last call. Rows are assumed to be only ever
// appended to the table. Does nothing if no File is set.
func (lt *LogTable) WriteNewRows(delim etable.Delims) error {
	if lt.File == nil {
		return nil
	}
	if !lt.WroteHeaders {
		if _, err := lt.Table.WriteCSVHeaders(lt.File, delim); err != nil {
			return err
		}
		lt.WroteHeaders = true
	}
	for row := lt.WroteRows; row < lt.Table.Rows; row++ {
		if err := lt.Table.WriteCSVRow(lt.File, row, delim); err != nil {
			return err
		}
		lt.WroteRows = row + 1
	}
	return nil
}

// Close closes the File, if any
func (lt *LogTable) Close() error {
	if lt.File == nil {
		return nil
	}
	err := lt.File.Close()
	lt.File = nil
	return err
}
