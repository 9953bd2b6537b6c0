package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

// Roster holds the employees and admins of one payroll view together with
// their selection state. It is not safe for concurrent use; the owning
// Wizard serialises access.
type Roster struct {
	employees []*payroll.PayEntity
	admins    []*payroll.PayEntity
	filter    payroll.Filter
	totals    payroll.Totals
}

func NewRoster(employees, admins []*payroll.PayEntity) *Roster {
	r := &Roster{
		employees: employees,
		admins:    admins,
		filter:    payroll.Filter{Department: payroll.AllDepartments},
	}
	r.recompute()
	return r
}

func (r *Roster) list(kind payroll.EntityKind) ([]*payroll.PayEntity, error) {
	switch kind {
	case payroll.KindEmployee:
		return r.employees, nil
	case payroll.KindOrgAdmin:
		return r.admins, nil
	}
	return nil, payroll.ErrInvalidEntityKind
}

func (r *Roster) find(kind payroll.EntityKind, id int64) (*payroll.PayEntity, error) {
	entities, err := r.list(kind)
	if err != nil {
		return nil, err
	}
	for _, e := range entities {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, payroll.ErrEntityNotFound
}

// Toggle flips the selection of one entity.
func (r *Roster) Toggle(kind payroll.EntityKind, id int64) error {
	e, err := r.find(kind, id)
	if err != nil {
		return err
	}
	e.Selected = !e.Selected
	r.recompute()
	return nil
}

func (r *Roster) ToggleDetails(kind payroll.EntityKind, id int64) error {
	e, err := r.find(kind, id)
	if err != nil {
		return err
	}
	e.ShowDetails = !e.ShowDetails
	return nil
}

// SelectAll deselects the visible entities of kind when all of them are
// selected and selects them otherwise. Entities hidden by the filter keep
// their state.
func (r *Roster) SelectAll(kind payroll.EntityKind) error {
	visible, err := r.Visible(kind)
	if err != nil {
		return err
	}
	target := !allSelected(visible)
	for _, e := range visible {
		e.Selected = target
	}
	r.recompute()
	return nil
}

// AllSelected reports whether every visible entity of kind is selected. An
// empty view is never "all selected".
func (r *Roster) AllSelected(kind payroll.EntityKind) bool {
	visible, err := r.Visible(kind)
	if err != nil || len(visible) == 0 {
		return false
	}
	return allSelected(visible)
}

func allSelected(entities []*payroll.PayEntity) bool {
	for _, e := range entities {
		if !e.Selected {
			return false
		}
	}
	return true
}

func (r *Roster) SetFilter(f payroll.Filter) {
	if f.Department == "" {
		f.Department = payroll.AllDepartments
	}
	r.filter = f
}

func (r *Roster) Filter() payroll.Filter {
	return r.filter
}

// Visible returns the entities of kind that pass the current filter.
func (r *Roster) Visible(kind payroll.EntityKind) ([]*payroll.PayEntity, error) {
	entities, err := r.list(kind)
	if err != nil {
		return nil, err
	}
	return payroll.FilterEntities(entities, r.filter), nil
}

// Selected returns the selected entities of kind regardless of the filter.
func (r *Roster) Selected(kind payroll.EntityKind) []*payroll.PayEntity {
	entities, _ := r.list(kind)
	out := make([]*payroll.PayEntity, 0, len(entities))
	for _, e := range entities {
		if e.Selected {
			out = append(out, e)
		}
	}
	return out
}

// Departments lists ALL followed by the distinct employee departments in
// the order they first appear.
func (r *Roster) Departments() []string {
	out := []string{payroll.AllDepartments}
	seen := map[string]bool{}
	for _, e := range r.employees {
		if e.DepartmentName == "" || seen[e.DepartmentName] {
			continue
		}
		seen[e.DepartmentName] = true
		out = append(out, e.DepartmentName)
	}
	return out
}

func (r *Roster) Totals() payroll.Totals {
	return r.totals
}

// recompute folds over the selected employees and admins. Ungraded entities
// count towards the selection but add nothing to the amounts.
func (r *Roster) recompute() {
	t := payroll.Totals{
		Gross:      decimal.Zero,
		Deductions: decimal.Zero,
		Net:        decimal.Zero,
	}
	for _, entities := range [][]*payroll.PayEntity{r.employees, r.admins} {
		for _, e := range entities {
			if !e.Selected {
				continue
			}
			t.SelectedCount++
			if !e.HasGrade() {
				t.Ungraded = append(t.Ungraded, e.Ref())
				continue
			}
			t.Gross = t.Gross.Add(e.Grade.Gross())
			t.Deductions = t.Deductions.Add(e.Grade.Deductions())
			t.Net = t.Net.Add(payroll.ComputeNet(e.Grade))
			if e.Grade.OverDeducted() {
				t.OverDeducted = append(t.OverDeducted, e.Ref())
			}
		}
	}
	r.totals = t
}
