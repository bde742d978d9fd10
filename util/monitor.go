// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package util

import (
	"time"

	"github.com/pkg/errors"
)

// Monitored is implemented by an entity or service which wants periodic
// health reporting. GetData should be lightweight since it runs at the
// monitoring frequency.
type Monitored interface {

	// Returns monitoring data, typically a JSON snapshot of internal stats.
	GetData() Blob

	// Reference name, presumably unique, so it is easy to locate in logs.
	Name() string
}

// Blob is the data returned by GetData, usually a JSON byte array.
type Blob struct {
	Data []byte
}

func NewBlob(ba []byte) *Blob {
	return &Blob{Data: ba}
}

// Monitor polls the entity's GetData at the configured frequency, logs each
// snapshot and publishes it on MonDataChan for any interested listener.
type Monitor struct {
	continueRun bool
	frequency   int // in seconds
	monEntity   Monitored
	MonDataChan chan Blob // exposed so anyone interested in the data can listen
}

// NewMonitor builds a monitor for the given entity. The frequency is in
// seconds; there is no validation on it at present.
func NewMonitor(freq int, chanBufSz int, entity Monitored) (*Monitor, error) {
	if entity == nil {
		return nil, errors.New("entity to be monitored is nil")
	}
	m := &Monitor{
		frequency:   freq,
		monEntity:   entity,
		MonDataChan: make(chan Blob, chanBufSz),
	}
	return m, nil
}

func (m *Monitor) Start() {
	m.continueRun = true
	go m.monitor()
}

func (m *Monitor) Stop() {
	m.continueRun = false
}

func (m *Monitor) monitor() {
	for m.continueRun {
		time.Sleep(time.Duration(m.frequency) * time.Second)
		blob := m.monEntity.GetData()
		m.MonDataChan <- blob
		Log(m.monEntity.Name() + ":  " + string(blob.Data))
	}
	Log("Monitor for entity " + m.monEntity.Name() + " stopped.")
}
