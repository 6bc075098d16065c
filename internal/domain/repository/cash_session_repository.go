package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// CashSessionRepository puerto de persistencia de sesiones de caja.
// El invariante "a lo sumo una sesión OPEN por tienda" se sostiene con un
// índice único parcial sobre (shop_id) WHERE status = 'OPEN'; CreateOpen
// traduce la violación a ErrSessionAlreadyOpen.
type CashSessionRepository interface {
	CreateOpen(session *entity.CashSession) error
	GetByID(id string) (*entity.CashSession, error)
	// GetOpenByShop devuelve la sesión OPEN de la tienda, o nil si no hay.
	GetOpenByShop(shopID string) (*entity.CashSession, error)
	// Close persiste el cierre; falla con ErrSessionNotOpen si la fila ya no
	// está OPEN (cierre concurrente).
	Close(session *entity.CashSession) error
}
