// Package seeds loads initial catalog entries and the first operator
// account from a YAML file on startup. Existing rows are never
// overwritten, so the seed file is safe to leave in place.
package seeds

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/gestio-app/gestio/internal/infrastructure/persistence/models"
	"github.com/gestio-app/gestio/internal/shared/config"
	"github.com/gestio-app/gestio/internal/shared/id"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

type seedFile struct {
	Users []struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
	} `yaml:"users"`
	Products []struct {
		Name  string `yaml:"name"`
		Price string `yaml:"price"`
	} `yaml:"products"`
	Sellers []struct {
		Name           string `yaml:"name"`
		CommissionRate string `yaml:"commission_rate"`
	} `yaml:"sellers"`
}

// Apply reads the seed file and inserts any entries that do not exist
// yet. A missing or empty path disables seeding.
func Apply(db *gorm.DB, cfg *config.SeedConfig) error {
	if cfg == nil || cfg.Path == "" {
		return nil
	}

	log := logger.NewLogger().With("component", "seeds")

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infow("seed file not found, skipping", "path", cfg.Path)
			return nil
		}
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := seedUsers(db, file); err != nil {
		return err
	}
	if err := seedProducts(db, file); err != nil {
		return err
	}
	if err := seedSellers(db, file); err != nil {
		return err
	}

	log.Infow("seeding completed",
		"users", len(file.Users),
		"products", len(file.Products),
		"sellers", len(file.Sellers))
	return nil
}

func seedUsers(db *gorm.DB, file seedFile) error {
	for _, u := range file.Users {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" || u.Password == "" {
			return fmt.Errorf("seed user requires email and password")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		user := models.UserModel{
			Email:        email,
			Name:         u.Name,
			PasswordHash: string(hash),
		}
		if err := db.Where(models.UserModel{Email: email}).
			Attrs(user).
			FirstOrCreate(&models.UserModel{}).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", email, err)
		}
	}
	return nil
}

func seedProducts(db *gorm.DB, file seedFile) error {
	for _, p := range file.Products {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("seed product requires a name")
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("invalid price for seed product %s: %w", name, err)
		}
		product := models.ProductModel{
			SID:   id.MustGenerateWithPrefix(id.PrefixProduct, id.DefaultLength),
			Name:  name,
			Price: price,
		}
		if err := db.Where(models.ProductModel{Name: name}).
			Attrs(product).
			FirstOrCreate(&models.ProductModel{}).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", name, err)
		}
	}
	return nil
}

func seedSellers(db *gorm.DB, file seedFile) error {
	for _, s := range file.Sellers {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("seed seller requires a name")
		}
		rate, err := decimal.NewFromString(s.CommissionRate)
		if err != nil {
			return fmt.Errorf("invalid commission rate for seed seller %s: %w", name, err)
		}
		seller := models.SellerModel{
			SID:            id.MustGenerateWithPrefix(id.PrefixSeller, id.DefaultLength),
			Name:           name,
			CommissionRate: rate,
		}
		if err := db.Where(models.SellerModel{Name: name}).
			Attrs(seller).
			FirstOrCreate(&models.SellerModel{}).Error; err != nil {
			return fmt.Errorf("failed to seed seller %s: %w", name, err)
		}
	}
	return nil
}
