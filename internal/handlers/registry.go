package handlers

// AppHandlers bundles every handler the router registers.
type AppHandlers struct {
	ProfileHandler     *ProfileHandler
	CategoryHandler    *CategoryHandler
	SubcategoryHandler *SubcategoryHandler
	ProductHandler     *ProductHandler
	CartHandler        *CartHandler
	OrderHandler       *OrderHandler
	ReviewHandler      *ReviewHandler
	NoticeHandler      *NoticeHandler
	EmailHandler       *EmailHandler
}
