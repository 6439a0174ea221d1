package apiclient

import (
	"context"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.get(ctx, "/products", nil, &products)
	return products, err
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	escaped, err := escapeID(id)
	if err != nil {
		return product, err
	}
	err = c.get(ctx, "/products/"+escaped, nil, &product)
	return product, err
}

func (c *Client) CreateProduct(ctx context.Context, data domain.ProductData) (domain.Product, error) {
	var product domain.Product
	err := c.post(ctx, "/products", nil, data, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, data domain.ProductData) (domain.Product, error) {
	var product domain.Product
	escaped, err := escapeID(id)
	if err != nil {
		return product, err
	}
	err = c.put(ctx, "/products/"+escaped, nil, data, &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	escaped, err := escapeID(id)
	if err != nil {
		return err
	}
	return c.delete(ctx, "/products/"+escaped, nil)
}

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := c.get(ctx, "/customers", nil, &customers)
	return customers, err
}

func (c *Client) CreateCustomer(ctx context.Context, data domain.CustomerData) (domain.Customer, error) {
	var customer domain.Customer
	err := c.post(ctx, "/customers", nil, data, &customer)
	return customer, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, data domain.CustomerData) (domain.Customer, error) {
	var customer domain.Customer
	escaped, err := escapeID(id)
	if err != nil {
		return customer, err
	}
	err = c.put(ctx, "/customers/"+escaped, nil, data, &customer)
	return customer, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	escaped, err := escapeID(id)
	if err != nil {
		return err
	}
	return c.delete(ctx, "/customers/"+escaped, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := c.get(ctx, "/categories", nil, &categories)
	return categories, err
}

func (c *Client) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	var category domain.Category
	escaped, err := escapeID(id)
	if err != nil {
		return category, err
	}
	err = c.get(ctx, "/categories/"+escaped, nil, &category)
	return category, err
}

func (c *Client) CreateCategory(ctx context.Context, data domain.CategoryData) (domain.Category, error) {
	var category domain.Category
	err := c.post(ctx, "/categories", nil, data, &category)
	return category, err
}

// UpdateCategory sends only the non-empty fields of data.
func (c *Client) UpdateCategory(ctx context.Context, id string, data domain.CategoryData) (domain.Category, error) {
	var category domain.Category
	escaped, err := escapeID(id)
	if err != nil {
		return category, err
	}
	err = c.put(ctx, "/categories/"+escaped, nil, data, &category)
	return category, err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	escaped, err := escapeID(id)
	if err != nil {
		return err
	}
	return c.delete(ctx, "/categories/"+escaped, nil)
}

func (c *Client) ListCostItems(ctx context.Context) ([]domain.CostItem, error) {
	var items []domain.CostItem
	err := c.get(ctx, "/cost-items", nil, &items)
	return items, err
}

func (c *Client) CreateCostItem(ctx context.Context, data domain.CostItemData) (domain.CostItem, error) {
	var item domain.CostItem
	err := c.post(ctx, "/cost-items", nil, data, &item)
	return item, err
}

func (c *Client) UpdateCostItem(ctx context.Context, id string, data domain.CostItemData) (domain.CostItem, error) {
	var item domain.CostItem
	escaped, err := escapeID(id)
	if err != nil {
		return item, err
	}
	err = c.put(ctx, "/cost-items/"+escaped, nil, data, &item)
	return item, err
}

func (c *Client) DeleteCostItem(ctx context.Context, id string) error {
	escaped, err := escapeID(id)
	if err != nil {
		return err
	}
	return c.delete(ctx, "/cost-items/"+escaped, nil)
}

func (c *Client) ListPricingProfiles(ctx context.Context) ([]domain.PricingProfile, error) {
	var profiles []domain.PricingProfile
	err := c.get(ctx, "/pricing-profiles", nil, &profiles)
	return profiles, err
}

func (c *Client) CreatePricingProfile(ctx context.Context, data domain.PricingProfileData) (domain.PricingProfile, error) {
	var profile domain.PricingProfile
	err := c.post(ctx, "/pricing-profiles", nil, data, &profile)
	return profile, err
}

func (c *Client) UpdatePricingProfile(ctx context.Context, id string, data domain.PricingProfileData) (domain.PricingProfile, error) {
	var profile domain.PricingProfile
	escaped, err := escapeID(id)
	if err != nil {
		return profile, err
	}
	err = c.put(ctx, "/pricing-profiles/"+escaped, nil, data, &profile)
	return profile, err
}

func (c *Client) DeletePricingProfile(ctx context.Context, id string) error {
	escaped, err := escapeID(id)
	if err != nil {
		return err
	}
	return c.delete(ctx, "/pricing-profiles/"+escaped, nil)
}
