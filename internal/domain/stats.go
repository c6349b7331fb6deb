package domain

// TodoStats are the counters maintained alongside the todo store.
// PendingTodos is always TotalTodos - CompletedTodos.
type TodoStats struct {
	TotalTodos     int   `json:"totalTodos"`
	CompletedTodos int   `json:"completedTodos"`
	PendingTodos   int   `json:"pendingTodos"`
	Views          int64 `json:"views"`
}

// ShopStats is computed from the relational store on every request.
type ShopStats struct {
	TotalProducts int64 `json:"totalProducts"`
	TotalOrders   int64 `json:"totalOrders"`
	// CartItems is always zero; the storefront never counted cart rows.
	CartItems int `json:"cartItems"`
}
