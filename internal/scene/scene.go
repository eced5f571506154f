package scene

import (
	"github.com/san-kum/milankovitch/internal/insolation"
	"github.com/san-kum/milankovitch/internal/series"
)

// Scene is every diagram bound to one dataset.
type Scene struct {
	Data *series.Dataset

	Sun        *Sun
	Orbit      *Orbit
	Earth      *Earth
	Precession *Precession
	Heatmap    *Heatmap
	Overlay    *Overlay
	Strips     []*Strip
}

func New(ds *series.Dataset) *Scene {
	return &Scene{
		Data:       ds,
		Sun:        NewSun(),
		Orbit:      NewOrbit(ds.EccentricityNorm[0]),
		Earth:      NewEarth(ds.ObliquityNorm[0]),
		Precession: NewPrecession(ds.ObliquityWobble, ds.PrecessionDisplay),
		Heatmap:    NewHeatmap(),
		Overlay:    &Overlay{},
		Strips: []*Strip{
			{X0: 25, Values: ds.EccentricityPlot},
			{X0: 350, Values: ds.ObliquityPlot},
			{X0: 25, Values: ds.PrecessionPlot},
		},
	}
}

// Update moves every object to timestep i.
func (s *Scene) Update(i int) error {
	sample, err := s.Data.At(i)
	if err != nil {
		return err
	}
	s.Orbit.Update(s.Data.EccentricityNorm[i])
	s.Earth.Update(s.Data.ObliquityNorm[i])
	s.Precession.Update(i)
	s.Heatmap.Update(insolation.OrbitAt(s.Data, i))
	s.Overlay.Update(sample)
	return nil
}

// Draw paints the current state onto cv, back to front.
func (s *Scene) Draw(cv Canvas, i int) {
	cv.Clear(Black)
	s.Sun.Draw(cv)
	s.Orbit.Draw(cv)
	s.Earth.Draw(cv)
	s.Precession.Draw(cv)
	s.Heatmap.Draw(cv)
	s.Overlay.Draw(cv)
	for _, st := range s.Strips {
		st.Draw(cv, i)
	}
	drawQuadrants(cv)
}

// Render updates to timestep i and draws it.
func (s *Scene) Render(cv Canvas, i int) error {
	if err := s.Update(i); err != nil {
		return err
	}
	s.Draw(cv, i)
	return nil
}
