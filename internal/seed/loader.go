package seed

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/internal/domain"
)

// seedProductCount is how many catalog entries are fetched from the
// external API (product ids 1 through seedProductCount).
const seedProductCount = 9

// catalogProduct is the wire shape of the external catalog API.
type catalogProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// fixtureFile is the bundled fallback: a JSON object with a "data" array
// of product records.
type fixtureFile struct {
	Data []domain.ProductRecord `json:"data"`
}

// Loader fetches demo products from a third-party catalog API,
// downloading and embedding each product image. On any fetch or parse
// failure it falls back to the bundled fixture file.
type Loader struct {
	apiURL      string
	fixturePath string
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewLoader(apiURL, fixturePath string, logger *zap.Logger) *Loader {
	return &Loader{
		apiURL:      apiURL,
		fixturePath: fixturePath,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		logger:      logger,
	}
}

func (l *Loader) LoadSeedData(ctx context.Context) ([]domain.ProductRecord, []domain.StockRecord, error) {
	products := make([]domain.ProductRecord, 0, seedProductCount)
	stocks := make([]domain.StockRecord, 0, seedProductCount)

	for i := 1; i <= seedProductCount; i++ {
		product, err := l.fetchProduct(ctx, i)
		if err != nil {
			l.logger.Warn("Failed to fetch seed data from the external api, using fixture",
				zap.Int("product", i),
				zap.Error(err))
			return l.loadFixture()
		}

		products = append(products, *product)
		stocks = append(stocks, domain.StockRecord{
			ProductID:   product.ProductID,
			StockAmount: i * 10,
		})
	}

	return products, stocks, nil
}

func (l *Loader) fetchProduct(ctx context.Context, id int) (*domain.ProductRecord, error) {
	var data catalogProduct
	if err := l.getJSON(ctx, fmt.Sprintf("%s/products/%d", l.apiURL, id), &data); err != nil {
		return nil, err
	}

	image, err := l.fetchImage(ctx, data.Image)
	if err != nil {
		return nil, err
	}

	return &domain.ProductRecord{
		ProductID:   strconv.Itoa(data.ID),
		SellerID:    strconv.Itoa(data.ID + 1),
		Name:        data.Title,
		Description: data.Description,
		Price:       data.Price,
		ImageB64:    image,
	}, nil
}

func (l *Loader) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// fetchImage downloads the product image and embeds it as a base64
// data URI.
func (l *Loader) fetchImage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching image", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// loadFixture reads the bundled product fixture and generates matching
// stock rows.
func (l *Loader) loadFixture() ([]domain.ProductRecord, []domain.StockRecord, error) {
	raw, err := os.ReadFile(l.fixturePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read seed fixture: %w", err)
	}

	var fixture fixtureFile
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}

	stocks := make([]domain.StockRecord, 0, seedProductCount)
	for i := 1; i <= seedProductCount; i++ {
		stocks = append(stocks, domain.StockRecord{
			ProductID:   strconv.Itoa(i),
			StockAmount: i * 10,
		})
	}

	return fixture.Data, stocks, nil
}
