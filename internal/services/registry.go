package services

// ServiceContainer bundles every service the handlers need.
type ServiceContainer struct {
	User    UserService
	Catalog CatalogService
	Cart    CartService
	Order   OrderService
	Review  ReviewService
	Notice  NoticeService
	Email   EmailService
}
