package core

// updateMarker ages a floating score marker and removes it once the
// last animation step has played out.
func (w *World) updateMarker(h Handle, a *Actor, dt float64) {
	a.markerClock += dt
	for a.markerClock >= w.tuning.MarkerStepTime {
		a.markerClock -= w.tuning.MarkerStepTime
		a.MarkerStep++
	}
	if a.MarkerStep >= w.tuning.MarkerSteps {
		w.destroy(h)
	}
}
