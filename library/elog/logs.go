package elog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/emer/etable/etable"
	"github.com/goki/gi/gi"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// Logs holds the data table of every curve, keyed by ScopeKey,
// and streams them to files when requested.
type Logs struct {
	Tables map[ScopeKey]*LogTable `desc:"log table for each subplot curve"`
	Keys   []ScopeKey             `desc:"keys in the order tables were added"`
	Delim  etable.Delims          `desc:"delimiter used for log files"`
}

// AddTable registers dt under the key for subplot and curve. If that key
// is already taken, as with repeated subplot titles, the subplot part gets
// a " (n)" suffix so every table keeps its own entry.
func (lg *Logs) AddTable(subplot, curve string, dt *etable.Table) *LogTable {
	if lg.Tables == nil {
		lg.Tables = make(map[ScopeKey]*LogTable)
	}
	sk := GenScopeKey(subplot, curve)
	for n := 2; lg.Tables[sk] != nil; n++ {
		sk = GenScopeKey(fmt.Sprintf("%s (%d)", subplot, n), curve)
	}
	lg.Keys = append(lg.Keys, sk)
	dt.SetMetaData("precision", fmt.Sprint(LogPrec))
	lt := NewLogTable(dt)
	lt.Meta["subplot"] = subplot
	lt.Meta["curve"] = curve
	lg.Tables[sk] = lt
	return lt
}

// SetLogFile sets the log file for given key, creating (truncating) it.
// Any previous file for the key is closed.
func (lg *Logs) SetLogFile(sk ScopeKey, fnm string) error {
	lt, ok := lg.Tables[sk]
	if !ok {
		return fmt.Errorf("elog: no table for %q", sk)
	}
	if err := lt.Close(); err != nil {
		return err
	}
	f, err := os.Create(fnm)
	if err != nil {
		return err
	}
	lt.File = f
	lt.WroteHeaders = false
	lt.WroteRows = 0
	return nil
}

// SetLogDir sets a log file in dir for every table, named after its key,
// with the given extension (e.g. "tsv").
func (lg *Logs) SetLogDir(dir, ext string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	fnms := lg.FileNames(ext)
	for _, sk := range lg.Keys {
		if err := lg.SetLogFile(sk, filepath.Join(dir, fnms[sk])); err != nil {
			return err
		}
	}
	return nil
}

// FileNames returns a distinct file name with extension ext for every key.
// Keys that map to the same name, like "val loss" and "val_loss", get a
// numeric suffix in the order they were added.
func (lg *Logs) FileNames(ext string) map[ScopeKey]string {
	fnms := make(map[ScopeKey]string, len(lg.Keys))
	used := make(map[string]bool, len(lg.Keys))
	for _, sk := range lg.Keys {
		base := sk.FileName()
		fnm := base + "." + ext
		for n := 2; used[fnm]; n++ {
			fnm = fmt.Sprintf("%s_%d.%s", base, n, ext)
		}
		used[fnm] = true
		fnms[sk] = fnm
	}
	return fnms
}

// WriteNewRows writes any new rows of the table for given key to its file
func (lg *Logs) WriteNewRows(sk ScopeKey) error {
	lt, ok := lg.Tables[sk]
	if !ok {
		return fmt.Errorf("elog: no table for %q", sk)
	}
	return lt.WriteNewRows(lg.Delim)
}

// WriteAll writes new rows of all tables that have a file
func (lg *Logs) WriteAll() error {
	for _, sk := range lg.Keys {
		if err := lg.WriteNewRows(sk); err != nil {
			return fmt.Errorf("elog: writing %q: %w", sk, err)
		}
	}
	return nil
}

// SaveCSV saves a snapshot of every table into dir, one file per key
func (lg *Logs) SaveCSV(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	fnms := lg.FileNames("csv")
	for _, sk := range lg.Keys {
		fnm := filepath.Join(dir, fnms[sk])
		if err := lg.Tables[sk].Table.SaveCSV(gi.FileName(fnm), etable.Comma, etable.Headers); err != nil {
			return fmt.Errorf("elog: saving %q: %w", sk, err)
		}
	}
	return nil
}

// FilesOpen returns the keys that currently have a log file, sorted
func (lg *Logs) FilesOpen() []ScopeKey {
	var sks []ScopeKey
	for sk, lt := range lg.Tables {
		if lt.File != nil {
			sks = append(sks, sk)
		}
	}
	sort.Slice(sks, func(i, j int) bool { return sks[i] < sks[j] })
	return sks
}

// CloseLogFiles closes all log files
func (lg *Logs) CloseLogFiles() error {
	var first error
	for _, lt := range lg.Tables {
		if err := lt.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
