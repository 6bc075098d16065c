package entity

import "time"

// Shop representa un local/tienda. Stock, ventas y sesiones de caja se manejan por tienda.
type Shop struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
