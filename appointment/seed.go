package appointment

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSeed is the data set the agenda starts with.
func DefaultSeed() []Appointment {
	return []Appointment{
		{
			ID:          "1",
			Title:       "Consulta Médica",
			Description: "Check-up anual com cardiologista",
			Date:        "2024-01-15",
			Time:        "14:30",
			Type:        TypeHealth,
			Status:      StatusPending,
		},
		{
			ID:          "2",
			Title:       "Reunião de Trabalho",
			Description: "Apresentação do projeto novo",
			Date:        "2024-01-16",
			Time:        "10:00",
			Type:        TypeWork,
			Status:      StatusPending,
		},
		{
			ID:          "3",
			Title:       "Aniversário da Maria",
			Description: "Festa surpresa no jardim",
			Date:        "2024-01-18",
			Time:        "19:00",
			Type:        TypePersonal,
			Status:      StatusPending,
		},
	}
}

type seedFile struct {
	Appointments []Appointment `yaml:"appointments"`
}

// ReadSeed decodes a YAML document of the form
//
//	appointments:
//	  - id: "1"
//	    title: Dentist
//	    date: 2024-02-01
//	    time: "09:00"
//	    type: health
//
// Records without a status are pending.
func ReadSeed(r io.Reader) ([]Appointment, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for i := range f.Appointments {
		if f.Appointments[i].Status == "" {
			f.Appointments[i].Status = StatusPending
		}
	}
	if err := validateSeed(f.Appointments); err != nil {
		return nil, err
	}
	return f.Appointments, nil
}

// ReadSeedFile reads a seed file, or returns DefaultSeed when path is empty.
func ReadSeedFile(path string) ([]Appointment, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return ReadSeed(f)
}
