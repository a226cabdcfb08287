package metrics

import "github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/entity"

// WindowSelection resultado del Period Filter.
type WindowSelection struct {
	Overlapping []entity.Reservation // estadías que se cruzan con la ventana, cualquier estado
	Completed   []entity.Reservation // subconjunto de Overlapping con estado checked_out
}

// FilterByWindow selecciona las reservas que se cruzan con w y, de ellas, las completadas.
// Conserva el orden de entrada; nunca devuelve slices nil.
func FilterByWindow(reservations []entity.Reservation, w DateWindow) WindowSelection {
	sel := WindowSelection{
		Overlapping: make([]entity.Reservation, 0, len(reservations)),
		Completed:   make([]entity.Reservation, 0),
	}
	for _, r := range reservations {
		if !w.Overlaps(r.CheckIn, r.CheckOut) {
			continue
		}
		sel.Overlapping = append(sel.Overlapping, r)
		if r.Completed() {
			sel.Completed = append(sel.Completed, r)
		}
	}
	return sel
}

// completedOnly reservas con estado checked_out, en orden.
func completedOnly(reservations []entity.Reservation) []entity.Reservation {
	out := make([]entity.Reservation, 0)
	for _, r := range reservations {
		if r.Completed() {
			out = append(out, r)
		}
	}
	return out
}
