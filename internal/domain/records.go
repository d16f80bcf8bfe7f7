package domain

// StockRecord is the quantity-on-hand for a single product. At most one
// record exists per product_id in a tenant's stock collection; a missing
// record reads as a stock amount of zero.
type StockRecord struct {
	ProductID   string `bson:"product_id" json:"product_id"`
	StockAmount int    `bson:"stock_amount" json:"stock_amount"`
}

// ProductRecord is a catalog entry. Records are insert-only: there is no
// update or delete path.
type ProductRecord struct {
	ProductID   string  `bson:"product_id"  json:"product_id"`
	SellerID    string  `bson:"seller_id"   json:"seller_id"`
	Name        string  `bson:"name"        json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price"       json:"price"`
	ImageB64    string  `bson:"image_b64"   json:"image_b64"`
}

type AddProductRequest struct {
	ProductID   string  `json:"product_id"  binding:"required"`
	SellerID    string  `json:"seller_id"   binding:"required"`
	Name        string  `json:"name"        binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"       binding:"required"`
	ImageB64    string  `json:"image_b64"   binding:"required"`
}

func (r AddProductRequest) ToRecord() ProductRecord {
	return ProductRecord{
		ProductID:   r.ProductID,
		SellerID:    r.SellerID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageB64:    r.ImageB64,
	}
}
