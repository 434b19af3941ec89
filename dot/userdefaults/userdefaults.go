// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package userdefaults persists the database and operating mode
// settings of the last run so the next run can resume with them.
package userdefaults

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/ChainSafe/conductor/dot/types"
	scribble "github.com/nanobox-io/golang-scribble"
)

const collection = "user_defaults"

const (
	// DefaultModeTimeout is the mode timeout used when none was stored.
	DefaultModeTimeout = 300 * time.Second
	// DefaultModeAlarm is the mode alarm used when none was stored.
	DefaultModeAlarm = 3600 * time.Second
)

var errNoDriver = errors.New("restart state storage is not available")

// Logger is the logger used by the restart state.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// record is the JSON document stored on disk.
type record struct {
	Pruning     string `json:"pruning"`
	Tracing     bool   `json:"tracing"`
	FatDB       bool   `json:"fat_db"`
	Mode        string `json:"mode"`
	ModeTimeout uint64 `json:"mode.timeout"`
	ModeAlarm   uint64 `json:"mode.alarm"`
}

// Defaults is the restart state of the node for one chain variant.
// It is safe for concurrent use.
type Defaults struct {
	logger  Logger
	driver  *scribble.Driver
	variant string

	mutex       sync.Mutex
	firstLaunch bool
	pruning     types.Algorithm
	tracing     bool
	fatDB       bool
	mode        types.Mode
}

func newDefaults(logger Logger, driver *scribble.Driver, variant string) *Defaults {
	return &Defaults{
		logger:      logger,
		driver:      driver,
		variant:     variant,
		firstLaunch: true,
		pruning:     types.Fast,
		mode:        types.NewMode(types.ModeActive, DefaultModeTimeout, DefaultModeAlarm),
	}
}

// Load loads the restart state stored in the root directory given
// for the chain variant given. It never fails: a missing or corrupt
// record results in the default restart state, and individual fields
// not valid fall back to their default.
func Load(root, variant string, logger Logger) *Defaults {
	driver, err := scribble.New(root, nil)
	if err != nil {
		logger.Warnf("cannot open restart state in %s: %s", root, err)
		return newDefaults(logger, nil, variant)
	}

	d := newDefaults(logger, driver, variant)

	var r record
	err = driver.Read(collection, variant, &r)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debugf("no restart state found for %s", variant)
		return d
	case err != nil:
		logger.Warnf("ignoring corrupt restart state for %s: %s", variant, err)
		return d
	}

	d.firstLaunch = false
	d.tracing = r.Tracing
	d.fatDB = r.FatDB

	if pruning, err := types.ParseAlgorithm(r.Pruning); err == nil {
		d.pruning = pruning
	} else {
		logger.Warnf("ignoring stored pruning: %s", err)
	}

	timeout, alarm := DefaultModeTimeout, DefaultModeAlarm
	if r.ModeTimeout > 0 {
		timeout = time.Duration(r.ModeTimeout) * time.Second
	}
	if r.ModeAlarm > 0 {
		alarm = time.Duration(r.ModeAlarm) * time.Second
	}
	if kind, err := types.ParseModeKind(r.Mode); err == nil {
		d.mode = types.NewMode(kind, timeout, alarm)
	} else {
		logger.Warnf("ignoring stored mode: %s", err)
	}

	return d
}

// IsFirstLaunch returns true if no restart state was loaded.
func (d *Defaults) IsFirstLaunch() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.firstLaunch
}

// Pruning returns the pruning algorithm of the restart state.
func (d *Defaults) Pruning() types.Algorithm {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.pruning
}

// Tracing returns true if transaction tracing was enabled.
func (d *Defaults) Tracing() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.tracing
}

// FatDB returns true if the fat database was enabled.
func (d *Defaults) FatDB() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.fatDB
}

// Mode returns the operating mode of the restart state.
func (d *Defaults) Mode() types.Mode {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.mode
}

// SetDatabase sets the database settings of the restart state.
// It does not persist them, call Save to do so.
func (d *Defaults) SetDatabase(pruning types.Algorithm, tracing, fatDB bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.pruning = pruning
	d.tracing = tracing
	d.fatDB = fatDB
}

// Save persists the restart state.
func (d *Defaults) Save() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.saveWithoutLocking()
}

func (d *Defaults) saveWithoutLocking() error {
	if d.driver == nil {
		return errNoDriver
	}

	r := record{
		Pruning:     d.pruning.String(),
		Tracing:     d.tracing,
		FatDB:       d.fatDB,
		Mode:        d.mode.Kind.String(),
		ModeTimeout: uint64(d.mode.Timeout / time.Second),
		ModeAlarm:   uint64(d.mode.Alarm / time.Second),
	}

	err := d.driver.Write(collection, d.variant, r)
	if err != nil {
		return fmt.Errorf("writing restart state: %w", err)
	}
	return nil
}

// ModeChanged records the new operating mode and persists it
// immediately. Errors are logged.
func (d *Defaults) ModeChanged(mode types.Mode) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.mode = mode
	err := d.saveWithoutLocking()
	if err != nil {
		d.logger.Warnf("cannot save mode %s: %s", mode, err)
		return
	}
	d.logger.Debugf("saved mode %s", mode)
}
