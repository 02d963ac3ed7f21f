package services

import (
	"fmt"
	"log"

	model "github.com/kavyansh10/GraminSetu/models"
	"gorm.io/gorm"
)

// ProductService handles product CRUD and runs product transitions through
// the automation engine.
type ProductService struct {
	db    *gorm.DB
	tasks *TaskService
}

func NewProductService(db *gorm.DB, tasks *TaskService) *ProductService {
	return &ProductService{db: db, tasks: tasks}
}

type ProductInput struct {
	ProductName       string
	ProductType       model.ProductType
	Status            model.ProductStatus
	Amount            float64
	PersonID          string
	AssignedOfficerID string
}

func (in ProductInput) validate() error {
	if in.ProductName == "" {
		return fmt.Errorf("%w: product_name is required", ErrInvalidInput)
	}
	if !in.ProductType.Valid() {
		return fmt.Errorf("%w: unknown product type %q", ErrInvalidInput, in.ProductType)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown product status %q", ErrInvalidInput, in.Status)
	}
	if in.PersonID == "" {
		return fmt.Errorf("%w: primary_person_id is required", ErrInvalidInput)
	}
	return nil
}

// Create inserts the product and evaluates the automation rules with no
// pre-image, so a product born as an active loan fires the business-review
// rule immediately.
func (s *ProductService) Create(branch, actorID string, in ProductInput) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product := model.Product{
		ProductName:       in.ProductName,
		ProductType:       in.ProductType,
		Status:            in.Status,
		Amount:            in.Amount,
		PersonID:          in.PersonID,
		AssignedOfficerID: in.AssignedOfficerID,
		Branch:            branch,
	}
	if err := s.db.Create(&product).Error; err != nil {
		log.Printf("[Create] Error creating product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.automate(branch, actorID, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update saves officer edits and evaluates the rules against the pre-image.
func (s *ProductService) Update(branch, actorID, id string, in ProductInput) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var product model.Product
	if err := s.db.Where("branch = ?", branch).First(&product, "id = ?", id).Error; err != nil {
		log.Printf("[Update] Error fetching product %s: %v", id, err)
		return nil, err
	}
	previous := product

	product.ProductName = in.ProductName
	product.ProductType = in.ProductType
	product.Status = in.Status
	product.Amount = in.Amount
	product.PersonID = in.PersonID
	product.AssignedOfficerID = in.AssignedOfficerID
	if err := s.db.Save(&product).Error; err != nil {
		log.Printf("[Update] Error updating product %s: %v", id, err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if err := s.automate(branch, actorID, &previous, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) automate(branch, actorID string, prev, cur *model.Product) error {
	var previous any
	if prev != nil {
		previous = prev
	}
	intents := Evaluate(ChangeEvent{
		Kind:           KindProduct,
		Branch:         branch,
		ActorOfficerID: actorID,
		SourceRef:      "products/" + cur.ID,
		Previous:       previous,
		Current:        cur,
	})
	return s.tasks.ApplyIntents(intents)
}

func (s *ProductService) Get(branch, id string) (*model.Product, error) {
	var product model.Product
	if err := s.db.Where("branch = ?", branch).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) List(branch string) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.Where("branch = ?", branch).Order("created_at desc").Find(&products).Error; err != nil {
		log.Printf("[List] Error fetching products for branch %s: %v", branch, err)
		return nil, err
	}
	return products, nil
}
