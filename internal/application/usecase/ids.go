package usecase

import (
	"sync"
	"time"
)

// nextID asigna identificadores de entidad: máximo existente + 1 (mínimo 1).
func nextID(existing []int64) int64 {
	var max int64
	for _, id := range existing {
		if id > max {
			max = id
		}
	}
	return max + 1
}

var (
	clockMu   sync.Mutex
	lastClock int64
)

// clockID asigna identificadores de imagen tomando el reloj en milisegundos.
// Dos llamadas dentro del mismo milisegundo en este proceso se desambiguan
// incrementando; entre procesos la colisión sigue siendo posible (riesgo
// documentado, heredado del esquema original).
func clockID() int64 {
	clockMu.Lock()
	defer clockMu.Unlock()
	t := time.Now().UnixMilli()
	if t <= lastClock {
		t = lastClock + 1
	}
	lastClock = t
	return t
}
