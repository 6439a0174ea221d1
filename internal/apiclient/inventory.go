package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

const (
	DefaultMovementPageSize = 20
	movementSort            = "createdAt,desc"
)

func (c *Client) ListInventory(ctx context.Context) ([]domain.Inventory, error) {
	var items []domain.Inventory
	err := c.get(ctx, "/inventory", nil, &items)
	return items, err
}

// ListLowStock returns every item at or below its minimum, empty shelves included.
func (c *Client) ListLowStock(ctx context.Context) ([]domain.Inventory, error) {
	var items []domain.Inventory
	err := c.get(ctx, "/inventory/low-stock", nil, &items)
	return items, err
}

func (c *Client) InventorySummary(ctx context.Context) (domain.InventorySummary, error) {
	var summary domain.InventorySummary
	err := c.get(ctx, "/inventory/summary", nil, &summary)
	return summary, err
}

func (c *Client) GetProductInventory(ctx context.Context, productID string) (domain.Inventory, error) {
	var item domain.Inventory
	escaped, err := escapeID(productID)
	if err != nil {
		return item, err
	}
	err = c.get(ctx, "/inventory/product/"+escaped, nil, &item)
	return item, err
}

func (c *Client) AdjustStock(ctx context.Context, productID string, data domain.StockAdjustData) (domain.Inventory, error) {
	var item domain.Inventory
	escaped, err := escapeID(productID)
	if err != nil {
		return item, err
	}
	err = c.post(ctx, "/inventory/product/"+escaped+"/adjust", nil, data, &item)
	return item, err
}

func (c *Client) UpdateMinStock(ctx context.Context, productID string, minStock int) (domain.Inventory, error) {
	return c.inventoryQuantityCall(ctx, http.MethodPut, productID, "min-stock", "minStock", minStock)
}

func (c *Client) ReserveStock(ctx context.Context, productID string, quantity int) (domain.Inventory, error) {
	return c.inventoryQuantityCall(ctx, http.MethodPost, productID, "reserve", "quantity", quantity)
}

func (c *Client) ReleaseStock(ctx context.Context, productID string, quantity int) (domain.Inventory, error) {
	return c.inventoryQuantityCall(ctx, http.MethodPost, productID, "release", "quantity", quantity)
}

func (c *Client) inventoryQuantityCall(ctx context.Context, method, productID, action, param string, value int) (domain.Inventory, error) {
	var item domain.Inventory
	escaped, err := escapeID(productID)
	if err != nil {
		return item, err
	}
	query := url.Values{param: {strconv.Itoa(value)}}
	err = c.doJSON(ctx, method, "/inventory/product/"+escaped+"/"+action, query, nil, &item)
	return item, err
}

// ListStockMovements pages through a product's movements, newest first. A
// non-positive size falls back to DefaultMovementPageSize.
func (c *Client) ListStockMovements(ctx context.Context, productID string, page, size int) (domain.StockMovementPage, error) {
	var result domain.StockMovementPage
	escaped, err := escapeID(productID)
	if err != nil {
		return result, err
	}
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultMovementPageSize
	}
	query := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
		"sort": {movementSort},
	}
	err = c.get(ctx, "/inventory/product/"+escaped+"/movements", query, &result)
	return result, err
}

// UploadProductImage sends the image as multipart form field "file".
func (c *Client) UploadProductImage(ctx context.Context, productID, filename string, content io.Reader) (domain.ProductImage, error) {
	var image domain.ProductImage
	escaped, err := escapeID(productID)
	if err != nil {
		return image, err
	}
	path := "/products/" + escaped + "/images"

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return image, fmt.Errorf("POST %s: %w", path, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return image, fmt.Errorf("POST %s: read image: %w", path, err)
	}
	if err := form.Close(); err != nil {
		return image, fmt.Errorf("POST %s: %w", path, err)
	}

	err = c.do(ctx, http.MethodPost, path, nil, &body, form.FormDataContentType(), &image)
	return image, err
}

func (c *Client) ListProductImages(ctx context.Context, productID string) ([]domain.ProductImage, error) {
	var images []domain.ProductImage
	escaped, err := escapeID(productID)
	if err != nil {
		return images, err
	}
	err = c.get(ctx, "/products/"+escaped+"/images", nil, &images)
	return images, err
}

func (c *Client) DeleteProductImage(ctx context.Context, productID, imageID string) error {
	product, err := escapeID(productID)
	if err != nil {
		return err
	}
	image, err := escapeID(imageID)
	if err != nil {
		return err
	}
	return c.delete(ctx, "/products/"+product+"/images/"+image, nil)
}

func (c *Client) SetPrimaryImage(ctx context.Context, productID, imageID string) (domain.ProductImage, error) {
	var result domain.ProductImage
	product, err := escapeID(productID)
	if err != nil {
		return result, err
	}
	image, err := escapeID(imageID)
	if err != nil {
		return result, err
	}
	err = c.put(ctx, "/products/"+product+"/images/"+image+"/primary", nil, nil, &result)
	return result, err
}
