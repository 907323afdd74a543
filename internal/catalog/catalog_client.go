package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eauctionbuyer/internal/models"

	"go.uber.org/zap"
)

const productIDParam = "{product-id}"

// maxBodyBytes caps what we read from the seller service for one product.
const maxBodyBytes = 1 << 20

//go:generate mockgen -source=catalog_client.go -destination=mock_catalog.go -package=catalog

type IProductCatalog interface {
	// Fetch returns nil, nil when the seller service answers successfully
	// without a product.
	Fetch(ctx context.Context, productID int64) (*models.Product, error)
}

// StatusError is returned when the seller service answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("seller service %s answered %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

type Options struct {
	Scheme        string
	Host          string
	Port          int // <= 0 means the scheme default
	ProductSearch string
	Timeout       time.Duration
}

type productCatalog struct {
	opts Options
	hc   *http.Client
}

func NewProductCatalog(opts Options) IProductCatalog {
	return &productCatalog{
		opts: opts,
		hc:   &http.Client{Timeout: opts.Timeout},
	}
}

// NewProductCatalogWithClient is used when the caller owns the transport.
func NewProductCatalogWithClient(opts Options, hc *http.Client) IProductCatalog {
	return &productCatalog{opts: opts, hc: hc}
}

func (c *productCatalog) endpoint(productID int64) string {
	host := c.opts.Host
	if c.opts.Port > 0 {
		host = net.JoinHostPort(host, strconv.Itoa(c.opts.Port))
	}
	u := url.URL{
		Scheme: c.opts.Scheme,
		Host:   host,
		Path:   strings.ReplaceAll(c.opts.ProductSearch, productIDParam, strconv.FormatInt(productID, 10)),
	}
	return u.String()
}

func (c *productCatalog) Fetch(ctx context.Context, productID int64) (*models.Product, error) {
	if productID == 0 {
		return nil, nil
	}
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	endpoint := c.endpoint(productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.hc.Do(req)
	if err != nil {
		zap.L().Warn("catalog_fetch", zap.Int64("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("fetch product %d: %w", productID, err)
	}
	defer res.Body.Close()

	zap.L().Debug("catalog_fetch",
		zap.Int64("product_id", productID),
		zap.Int("status", res.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBodyBytes))
		return nil, &StatusError{URL: endpoint, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read product %d: %w", productID, err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	var product *models.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("decode product %d: %w", productID, err)
	}
	return product, nil
}
