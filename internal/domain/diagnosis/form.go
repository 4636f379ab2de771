package diagnosis

import (
	"github.com/swasthyasetu/portal/pkg/browse"
)

// EntryForm models the diagnosis entry workflow: one selected patient at
// a time, an ordered set of chosen diagnosis codes, and free-text notes
// and prescriptions. Input produces the validated submission payload.
type EntryForm struct {
	patient       browse.Selection[Patient]
	diagnoses     []string
	notes         string
	prescriptions []string
}

func NewEntryForm() *EntryForm {
	return &EntryForm{}
}

// SelectPatient replaces any previously selected patient.
func (f *EntryForm) SelectPatient(p Patient) {
	f.patient.Select(p)
}

// ClearPatient returns the form to the no-patient state.
func (f *EntryForm) ClearPatient() {
	f.patient.Clear()
}

// Patient returns the selected patient, if any.
func (f *EntryForm) Patient() (Patient, bool) {
	return f.patient.Get()
}

// AddDiagnosis appends a code; duplicates are ignored.
func (f *EntryForm) AddDiagnosis(code string) {
	for _, d := range f.diagnoses {
		if d == code {
			return
		}
	}
	f.diagnoses = append(f.diagnoses, code)
}

// RemoveDiagnosis drops a code; unknown codes are ignored.
func (f *EntryForm) RemoveDiagnosis(code string) {
	for i, d := range f.diagnoses {
		if d == code {
			f.diagnoses = append(f.diagnoses[:i], f.diagnoses[i+1:]...)
			return
		}
	}
}

func (f *EntryForm) SetNotes(notes string) {
	f.notes = notes
}

func (f *EntryForm) SetPrescriptions(prescriptions []string) {
	f.prescriptions = prescriptions
}

// Input builds the submission payload. A form without a selected patient
// or without at least one diagnosis is incomplete.
func (f *EntryForm) Input() (EntryInput, error) {
	p, ok := f.patient.Get()
	if !ok || len(f.diagnoses) == 0 {
		return EntryInput{}, ErrIncompleteEntry
	}
	return EntryInput{
		PatientID:     p.ID,
		Diagnoses:     append([]string(nil), f.diagnoses...),
		Notes:         f.notes,
		Prescriptions: append([]string(nil), f.prescriptions...),
	}, nil
}
