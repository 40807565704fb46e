package services

import (
	"aurum_backend/internal/models"
	"aurum_backend/internal/repositories"
	"aurum_backend/internal/services/dto"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the sentinel-error contracts of the
// gorm implementations so the services under test see the same behavior.

type fakeUserRepo struct {
	users        map[string]*models.User
	cartsCreated int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindBySubject(subject string) (*models.User, error) {
	for _, u := range r.users {
		if u.Auth0Subject == subject {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) CreateWithCart(user *models.User) error {
	for _, u := range r.users {
		if u.Auth0Subject == user.Auth0Subject || u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.ID = uuid.NewString()
	copied := *user
	r.users[user.ID] = &copied
	r.cartsCreated++
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeCatalogRepo struct {
	categories    map[string]*models.Category
	subcategories map[string]*models.Subcategory
	items         map[string]*models.JewelryItem
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		categories:    make(map[string]*models.Category),
		subcategories: make(map[string]*models.Subcategory),
		items:         make(map[string]*models.JewelryItem),
	}
}

func (r *fakeCatalogRepo) FindCategories() ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindCategoryByID(id string) (*models.Category, error) {
	if c, ok := r.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, repositories.ErrCategoryNotFound
}

func (r *fakeCatalogRepo) CategorySlugExists(slug string) (bool, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCatalogRepo) CreateCategory(category *models.Category) error {
	category.ID = uuid.NewString()
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCatalogRepo) UpdateCategory(category *models.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return repositories.ErrCategoryNotFound
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCatalogRepo) DeleteCategory(id string) error {
	if _, ok := r.categories[id]; !ok {
		return repositories.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCatalogRepo) FindSubcategories() ([]models.Subcategory, error) {
	out := make([]models.Subcategory, 0, len(r.subcategories))
	for _, s := range r.subcategories {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindSubcategoryByID(id string) (*models.Subcategory, error) {
	if s, ok := r.subcategories[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, repositories.ErrSubcategoryNotFound
}

func (r *fakeCatalogRepo) FindSubcategoriesByCategory(categoryID string) ([]models.Subcategory, error) {
	var out []models.Subcategory
	for _, s := range r.subcategories {
		if s.CategoryID == categoryID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) SubcategorySlugExists(slug string) (bool, error) {
	for _, s := range r.subcategories {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCatalogRepo) CreateSubcategory(subcategory *models.Subcategory) error {
	subcategory.ID = uuid.NewString()
	copied := *subcategory
	r.subcategories[subcategory.ID] = &copied
	return nil
}

func (r *fakeCatalogRepo) UpdateSubcategory(subcategory *models.Subcategory) error {
	if _, ok := r.subcategories[subcategory.ID]; !ok {
		return repositories.ErrSubcategoryNotFound
	}
	copied := *subcategory
	r.subcategories[subcategory.ID] = &copied
	return nil
}

func (r *fakeCatalogRepo) DeleteSubcategory(id string) error {
	if _, ok := r.subcategories[id]; !ok {
		return repositories.ErrSubcategoryNotFound
	}
	delete(r.subcategories, id)
	return nil
}

func (r *fakeCatalogRepo) FindItems() ([]models.JewelryItem, error) {
	out := make([]models.JewelryItem, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, *i)
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindItemByID(id string) (*models.JewelryItem, error) {
	if i, ok := r.items[id]; ok {
		copied := *i
		return &copied, nil
	}
	return nil, repositories.ErrItemNotFound
}

func (r *fakeCatalogRepo) FindItemsBySubcategory(subcategoryID string) ([]models.JewelryItem, error) {
	var out []models.JewelryItem
	for _, i := range r.items {
		if i.SubcategoryID == subcategoryID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) ItemSlugExists(slug string) (bool, error) {
	for _, i := range r.items {
		if i.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCatalogRepo) CreateItem(item *models.JewelryItem) error {
	item.ID = uuid.NewString()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeCatalogRepo) UpdateItem(item *models.JewelryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return repositories.ErrItemNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeCatalogRepo) DeleteItem(id string) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeCartRepo struct {
	carts   map[string]*models.Cart // keyed by userID
	catalog *fakeCatalogRepo
}

func newFakeCartRepo(catalog *fakeCatalogRepo) *fakeCartRepo {
	return &fakeCartRepo{
		carts:   make(map[string]*models.Cart),
		catalog: catalog,
	}
}

func (r *fakeCartRepo) addCart(userID string) *models.Cart {
	cart := &models.Cart{UserID: userID}
	cart.ID = uuid.NewString()
	r.carts[userID] = cart
	return cart
}

func (r *fakeCartRepo) FindByUserID(userID string) (*models.Cart, error) {
	cart, ok := r.carts[userID]
	if !ok {
		return nil, repositories.ErrCartNotFound
	}
	copied := *cart
	copied.Items = make([]models.CartItem, len(cart.Items))
	for i, line := range cart.Items {
		copied.Items[i] = line
		if item, ok := r.catalog.items[line.JewelryItemID]; ok {
			copied.Items[i].JewelryItem = *item
		}
	}
	return &copied, nil
}

func (r *fakeCartRepo) FindItemByID(itemID string) (*models.CartItem, error) {
	for _, cart := range r.carts {
		for _, line := range cart.Items {
			if line.ID == itemID {
				copied := line
				return &copied, nil
			}
		}
	}
	return nil, repositories.ErrCartItemNotFound
}

func (r *fakeCartRepo) AddItem(item *models.CartItem) error {
	for _, cart := range r.carts {
		if cart.ID != item.CartID {
			continue
		}
		for _, line := range cart.Items {
			if line.JewelryItemID == item.JewelryItemID {
				return repositories.ErrCartItemExists
			}
		}
		item.ID = uuid.NewString()
		cart.Items = append(cart.Items, *item)
		return nil
	}
	return repositories.ErrCartNotFound
}

func (r *fakeCartRepo) UpdateItemQuantity(itemID string, quantity int) error {
	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return repositories.ErrCartItemNotFound
}

func (r *fakeCartRepo) DeleteItem(itemID string) error {
	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
	}
	return repositories.ErrCartItemNotFound
}

func (r *fakeCartRepo) ClearCart(cartID string) error {
	for _, cart := range r.carts {
		if cart.ID == cartID {
			cart.Items = nil
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*models.Order
	carts  *fakeCartRepo
}

func newFakeOrderRepo(carts *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*models.Order),
		carts:  carts,
	}
}

func (r *fakeOrderRepo) FindByID(id string) (*models.Order, error) {
	if o, ok := r.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, repositories.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindAll() ([]models.Order, error) {
	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByUser(userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CreateWithItems(order *models.Order, items []models.OrderItem, cartID string) error {
	order.ID = uuid.NewString()
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].OrderID = order.ID
		if item, ok := r.carts.catalog.items[items[i].JewelryItemID]; ok {
			items[i].JewelryItem = *item
		}
	}
	copied := *order
	copied.Items = items
	r.orders[order.ID] = &copied
	return r.carts.ClearCart(cartID)
}

func (r *fakeOrderRepo) UpdateStatus(orderID string, status models.OrderStatus) error {
	o, ok := r.orders[orderID]
	if !ok {
		return repositories.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *fakeReviewRepo) FindAll() ([]models.Review, error) {
	out := make([]models.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		out = append(out, *rev)
	}
	return out, nil
}

func (r *fakeReviewRepo) FindByID(id string) (*models.Review, error) {
	if rev, ok := r.reviews[id]; ok {
		copied := *rev
		return &copied, nil
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) FindByItem(itemID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.JewelryItemID == itemID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ExistsForUserAndItem(userID, itemID string) (bool, error) {
	for _, rev := range r.reviews {
		if rev.UserID == userID && rev.JewelryItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	exists, _ := r.ExistsForUserAndItem(review.UserID, review.JewelryItemID)
	if exists {
		return repositories.ErrReviewAlreadyExists
	}
	review.ID = uuid.NewString()
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) Update(review *models.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return repositories.ErrReviewNotFound
	}
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) Delete(id string) error {
	if _, ok := r.reviews[id]; !ok {
		return repositories.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

type fakeNoticeRepo struct {
	notices map[string]*models.Notice
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{notices: make(map[string]*models.Notice)}
}

func (r *fakeNoticeRepo) FindAll() ([]models.Notice, error) {
	out := make([]models.Notice, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, *n)
	}
	return out, nil
}

func (r *fakeNoticeRepo) FindByID(id string) (*models.Notice, error) {
	if n, ok := r.notices[id]; ok {
		copied := *n
		return &copied, nil
	}
	return nil, repositories.ErrNoticeNotFound
}

func (r *fakeNoticeRepo) Create(notice *models.Notice) error {
	notice.ID = uuid.NewString()
	copied := *notice
	r.notices[notice.ID] = &copied
	return nil
}

func (r *fakeNoticeRepo) Update(notice *models.Notice) error {
	if _, ok := r.notices[notice.ID]; !ok {
		return repositories.ErrNoticeNotFound
	}
	copied := *notice
	r.notices[notice.ID] = &copied
	return nil
}

func (r *fakeNoticeRepo) Delete(id string) error {
	if _, ok := r.notices[id]; !ok {
		return repositories.ErrNoticeNotFound
	}
	delete(r.notices, id)
	return nil
}

type fakeEmailService struct {
	orderConfirmations int
	contactForms       int
	failWith           error
}

func (s *fakeEmailService) SendOrderConfirmation(_ *models.User, _ *models.Order, _ []models.CartItem) error {
	s.orderConfirmations++
	return s.failWith
}

func (s *fakeEmailService) SendContactForm(_ *dto.ContactFormRequest) error {
	s.contactForms++
	return s.failWith
}
