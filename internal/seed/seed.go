// Package seed loads the demo datasets from YAML and writes them to Postgres.
package seed

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Fixtures struct {
	Users         []User         `yaml:"users"`
	Predictions   []Prediction   `yaml:"predictions"`
	NewsSources   []NewsSource   `yaml:"news_sources"`
	News          []News         `yaml:"news"`
	Portfolios    []Portfolio    `yaml:"portfolios"`
	Notifications []Notification `yaml:"notifications"`
}

type User struct {
	Email                string `yaml:"email"`
	Name                 string `yaml:"name"`
	AvatarURL            string `yaml:"avatar_url"`
	PreferredCurrency    string `yaml:"preferred_currency"`
	RiskTolerance        string `yaml:"risk_tolerance"`
	NotificationsEnabled *bool  `yaml:"notifications_enabled"`
	Theme                string `yaml:"theme"`
}

type Prediction struct {
	AssetType       string    `yaml:"asset_type"`
	Symbol          string    `yaml:"symbol"`
	Name            string    `yaml:"name"`
	Category        string    `yaml:"category"`
	Exchange        string    `yaml:"exchange"`
	Unit            string    `yaml:"unit"`
	FromCurrency    string    `yaml:"from_currency"`
	ToCurrency      string    `yaml:"to_currency"`
	LogoURL         string    `yaml:"logo_url"`
	QuoteSymbol     string    `yaml:"quote_symbol"`
	CurrentValue    float64   `yaml:"current_value"`
	PredictedValue  float64   `yaml:"predicted_value"`
	Confidence      float64   `yaml:"confidence"`
	TimeFrame       string    `yaml:"time_frame"`
	HistoricalData  []float64 `yaml:"historical_data"`
	HistoricalDates []string  `yaml:"historical_dates"`
}

type NewsSource struct {
	Name        string  `yaml:"name"`
	Reliability float64 `yaml:"reliability"`
	LogoURL     string  `yaml:"logo_url"`
	Category    string  `yaml:"category"`
}

type News struct {
	Title         string    `yaml:"title"`
	Summary       string    `yaml:"summary"`
	Content       string    `yaml:"content"`
	Source        string    `yaml:"source"`
	URL           string    `yaml:"url"`
	ImageURL      string    `yaml:"image_url"`
	Category      string    `yaml:"category"`
	Topics        []string  `yaml:"topics"`
	Sentiment     string    `yaml:"sentiment"`
	ImpactLevel   string    `yaml:"impact_level"`
	RelatedAssets []string  `yaml:"related_assets"`
	PublishedAt   time.Time `yaml:"published_at"`
}

type Portfolio struct {
	UserEmail string  `yaml:"user_email"`
	Name      string  `yaml:"name"`
	Assets    []Asset `yaml:"assets"`
}

type Asset struct {
	AssetType      string    `yaml:"asset_type"`
	Symbol         string    `yaml:"symbol"`
	QuoteSymbol    string    `yaml:"quote_symbol"`
	Name           string    `yaml:"name"`
	Quantity       float64   `yaml:"quantity"`
	PurchasePrice  float64   `yaml:"purchase_price"`
	CurrentPrice   float64   `yaml:"current_price"`
	PredictedPrice float64   `yaml:"predicted_price"`
	Confidence     float64   `yaml:"confidence"`
	RiskScore      int       `yaml:"risk_score"`
	Sector         string    `yaml:"sector"`
	Region         string    `yaml:"region"`
	PurchaseDate   time.Time `yaml:"purchase_date"`
}

type Notification struct {
	UserEmail string         `yaml:"user_email"`
	Title     string         `yaml:"title"`
	Message   string         `yaml:"message"`
	Type      string         `yaml:"type"`
	Payload   map[string]any `yaml:"payload"`
}

// Summary counts the rows written by Apply.
type Summary struct {
	Users         int
	Predictions   int
	NewsSources   int
	News          int
	Portfolios    int
	Notifications int
}

// Load reads and validates a fixtures file.
func Load(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	var f Fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the references between datasets.
func (f *Fixtures) Validate() error {
	emails := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		if u.Email == "" {
			return fmt.Errorf("user %q has no email", u.Name)
		}
		emails[u.Email] = true
	}
	for _, p := range f.Predictions {
		if p.Symbol == "" || p.TimeFrame == "" {
			return fmt.Errorf("prediction %q needs symbol and time_frame", p.Name)
		}
		if len(p.HistoricalDates) > 0 && len(p.HistoricalDates) != len(p.HistoricalData) {
			return fmt.Errorf("prediction %s: %d historical values but %d dates",
				p.Symbol, len(p.HistoricalData), len(p.HistoricalDates))
		}
	}
	sources := make(map[string]bool, len(f.NewsSources))
	for _, s := range f.NewsSources {
		sources[s.Name] = true
	}
	for _, n := range f.News {
		if n.URL == "" {
			return fmt.Errorf("news %q has no url", n.Title)
		}
		if n.Source != "" && !sources[n.Source] {
			return fmt.Errorf("news %q references unknown source %q", n.Title, n.Source)
		}
	}
	for _, p := range f.Portfolios {
		if !emails[p.UserEmail] {
			return fmt.Errorf("portfolio %q references unknown user %q", p.Name, p.UserEmail)
		}
	}
	for _, n := range f.Notifications {
		if !emails[n.UserEmail] {
			return fmt.Errorf("notification %q references unknown user %q", n.Title, n.UserEmail)
		}
	}
	return nil
}

// Apply writes the fixtures in one transaction. Existing rows are kept, so it can be re-run.
func Apply(ctx context.Context, db *gorm.DB, f *Fixtures, log *logger.Logger) (*Summary, error) {
	var sum Summary
	now := utils.TimeNowUTC()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userIDs := make(map[string]uint, len(f.Users))
		for _, u := range f.Users {
			user := u.toEntity()
			res := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).Create(&user)
			if res.Error != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Email, res.Error)
			}
			sum.Users += int(res.RowsAffected)
			if err := tx.Where("email = ?", u.Email).First(&user).Error; err != nil {
				return fmt.Errorf("failed to load user %s: %w", u.Email, err)
			}
			userIDs[u.Email] = user.ID
		}

		for _, p := range f.Predictions {
			pred := p.toEntity(now)
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "symbol"}, {Name: "time_frame"}},
				DoNothing: true,
			}).Create(&pred)
			if res.Error != nil {
				return fmt.Errorf("failed to seed prediction %s: %w", p.Symbol, res.Error)
			}
			sum.Predictions += int(res.RowsAffected)
		}

		sourceIDs := make(map[string]uint, len(f.NewsSources))
		for _, s := range f.NewsSources {
			src := entity.NewsSource{Name: s.Name, Reliability: s.Reliability, LogoURL: s.LogoURL, Category: s.Category}
			res := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&src)
			if res.Error != nil {
				return fmt.Errorf("failed to seed news source %s: %w", s.Name, res.Error)
			}
			sum.NewsSources += int(res.RowsAffected)
			if err := tx.Where("name = ?", s.Name).First(&src).Error; err != nil {
				return fmt.Errorf("failed to load news source %s: %w", s.Name, err)
			}
			sourceIDs[s.Name] = src.ID
		}

		for _, n := range f.News {
			article := n.toEntity(sourceIDs[n.Source])
			res := tx.Omit(clause.Associations).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&article)
			if res.Error != nil {
				return fmt.Errorf("failed to seed news %q: %w", n.Title, res.Error)
			}
			sum.News += int(res.RowsAffected)
		}

		for _, p := range f.Portfolios {
			var existing int64
			userID := userIDs[p.UserEmail]
			if err := tx.Model(&entity.Portfolio{}).Where("user_id = ? AND name = ?", userID, p.Name).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				continue
			}
			portfolio := p.toEntity(userID)
			if err := tx.Create(&portfolio).Error; err != nil {
				return fmt.Errorf("failed to seed portfolio %q: %w", p.Name, err)
			}
			sum.Portfolios++
		}

		for _, n := range f.Notifications {
			userID := userIDs[n.UserEmail]
			var existing int64
			if err := tx.Model(&entity.Notification{}).Where("user_id = ? AND title = ?", userID, n.Title).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				continue
			}
			notification, err := n.toEntity(userID)
			if err != nil {
				return err
			}
			if err := tx.Create(&notification).Error; err != nil {
				return fmt.Errorf("failed to seed notification %q: %w", n.Title, err)
			}
			sum.Notifications++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Seed applied",
		logger.IntField("users", sum.Users),
		logger.IntField("predictions", sum.Predictions),
		logger.IntField("news_sources", sum.NewsSources),
		logger.IntField("news", sum.News),
		logger.IntField("portfolios", sum.Portfolios),
		logger.IntField("notifications", sum.Notifications),
	)
	return &sum, nil
}

func (u User) toEntity() entity.User {
	user := entity.User{
		Email:                u.Email,
		Name:                 u.Name,
		AvatarURL:            u.AvatarURL,
		PreferredCurrency:    defaultString(u.PreferredCurrency, "USD"),
		RiskTolerance:        defaultString(u.RiskTolerance, "medium"),
		Theme:                defaultString(u.Theme, "system"),
		NotificationsEnabled: true,
	}
	if u.NotificationsEnabled != nil {
		user.NotificationsEnabled = *u.NotificationsEnabled
	}
	return user
}

func (p Prediction) toEntity(now time.Time) entity.Prediction {
	return entity.Prediction{
		AssetType:       p.AssetType,
		Symbol:          strings.ToUpper(p.Symbol),
		Name:            p.Name,
		Category:        p.Category,
		Exchange:        p.Exchange,
		Unit:            p.Unit,
		FromCurrency:    p.FromCurrency,
		ToCurrency:      p.ToCurrency,
		LogoURL:         p.LogoURL,
		QuoteSymbol:     p.QuoteSymbol,
		CurrentValue:    p.CurrentValue,
		PredictedValue:  p.PredictedValue,
		Confidence:      p.Confidence,
		TimeFrame:       strings.ToLower(p.TimeFrame),
		HistoricalData:  pq.Float64Array(p.HistoricalData),
		HistoricalDates: pq.StringArray(p.HistoricalDates),
		ForecastData:    pq.Float64Array{},
		ForecastDates:   pq.StringArray{},
		LastUpdated:     now,
	}
}

func (n News) toEntity(sourceID uint) entity.NewsArticle {
	published := n.PublishedAt.UTC()
	sum := md5.Sum([]byte(n.URL + "|" + published.Format(time.RFC3339)))
	return entity.NewsArticle{
		Title:          n.Title,
		Summary:        n.Summary,
		Content:        n.Content,
		URL:            n.URL,
		ImageURL:       n.ImageURL,
		Category:       n.Category,
		Topics:         pq.StringArray(n.Topics),
		Sentiment:      defaultString(n.Sentiment, "neutral"),
		ImpactLevel:    defaultString(n.ImpactLevel, "low"),
		RelatedAssets:  pq.StringArray(n.RelatedAssets),
		PublishedAt:    published,
		HashIdentifier: hex.EncodeToString(sum[:]),
		SourceID:       sourceID,
	}
}

func (p Portfolio) toEntity(userID uint) entity.Portfolio {
	portfolio := entity.Portfolio{UserID: userID, Name: p.Name}
	for _, a := range p.Assets {
		portfolio.Assets = append(portfolio.Assets, entity.PortfolioAsset{
			AssetType:      a.AssetType,
			Symbol:         a.Symbol,
			QuoteSymbol:    a.QuoteSymbol,
			Name:           a.Name,
			Quantity:       a.Quantity,
			PurchasePrice:  a.PurchasePrice,
			CurrentPrice:   a.CurrentPrice,
			PredictedPrice: a.PredictedPrice,
			Confidence:     a.Confidence,
			RiskScore:      a.RiskScore,
			Sector:         a.Sector,
			Region:         a.Region,
			PurchaseDate:   a.PurchaseDate,
		})
	}
	return portfolio
}

func (n Notification) toEntity(userID uint) (entity.Notification, error) {
	notification := entity.Notification{
		UserID:  userID,
		Title:   n.Title,
		Message: n.Message,
		Type:    defaultString(n.Type, entity.NotificationTypeSystem),
	}
	if len(n.Payload) > 0 {
		raw, err := json.Marshal(n.Payload)
		if err != nil {
			return notification, fmt.Errorf("notification %q: invalid payload: %w", n.Title, err)
		}
		notification.Payload = datatypes.JSON(raw)
	}
	return notification, nil
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
