package item

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/logger"
	"github.com/osse101/middleearth/internal/validation"
)

// Config represents the JSON configuration for unique item pools
type Config struct {
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Tiers       []TierDef `json:"tiers"`
}

// TierDef is one pool of findable uniques
type TierDef struct {
	Tier           Tier    `json:"tier" validate:"required,oneof=low high elite"`
	Experience     int     `json:"experience" validate:"gte=1"`
	MaxProbability float64 `json:"max_probability" validate:"gte=0,lte=1"`
	Items          []Def   `json:"items" validate:"dive"`
}

// Def describes a single item in JSON or YAML content files
type Def struct {
	Name        string          `json:"name" yaml:"name" validate:"required"`
	Description string          `json:"description" yaml:"description"`
	Kind        Kind            `json:"kind" yaml:"kind" validate:"required,oneof=plain weapon armor potion charm"`
	Weight      decimal.Decimal `json:"weight" yaml:"weight"`
	Cost        decimal.Decimal `json:"cost" yaml:"cost"`
	Attack      int             `json:"attack,omitempty" yaml:"attack,omitempty" validate:"gte=0"`
	Defense     int             `json:"defense,omitempty" yaml:"defense,omitempty" validate:"gte=0"`
	HP          int             `json:"hp,omitempty" yaml:"hp,omitempty" validate:"gte=0"`
	Healing     int             `json:"healing,omitempty" yaml:"healing,omitempty" validate:"gte=0"`
}

// Build instantiates a fresh item from the definition
func (d Def) Build() *Item {
	switch d.Kind {
	case KindWeapon:
		return NewWeapon(d.Name, d.Description, d.Weight, d.Cost, d.Attack)
	case KindArmor:
		return NewArmor(d.Name, d.Description, d.Weight, d.Cost, d.Defense)
	case KindPotion:
		return NewPotion(d.Name, d.Description, d.Weight, d.Cost, d.Healing)
	case KindCharm:
		return NewCharm(d.Name, d.Description, d.Weight, d.Cost, d.Attack, d.Defense, d.HP)
	default:
		return New(d.Name, d.Description, d.Weight, d.Cost)
	}
}

// Validate checks field constraints and that only the kind's own bonuses are set
func (d Def) Validate() error {
	if err := validation.Structs().ValidateStruct(d); err != nil {
		return fmt.Errorf(ErrFmtItemInvalid, domain.ErrInvalidConfig, d.Name, err)
	}
	if d.Weight.IsNegative() || d.Cost.IsNegative() {
		return fmt.Errorf(ErrFmtItemInvalid, domain.ErrInvalidConfig, d.Name, "weight and cost must not be negative")
	}

	var unused bool
	switch d.Kind {
	case KindPlain:
		unused = d.Attack != 0 || d.Defense != 0 || d.HP != 0 || d.Healing != 0
	case KindWeapon:
		unused = d.Defense != 0 || d.HP != 0 || d.Healing != 0
	case KindArmor:
		unused = d.Attack != 0 || d.HP != 0 || d.Healing != 0
	case KindPotion:
		unused = d.Attack != 0 || d.Defense != 0 || d.HP != 0
	case KindCharm:
		unused = d.Healing != 0
	}
	if unused {
		return fmt.Errorf(ErrFmtItemBonusUnused, domain.ErrInvalidConfig, d.Name)
	}
	return nil
}

// Loader handles loading and validating unique item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) *Pools
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// LoadPools reads, validates and builds the unique pools in one step
func LoadPools(ctx context.Context, path string) (*Pools, error) {
	l := NewLoader()
	cfg, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(cfg); err != nil {
		return nil, err
	}
	pools := l.Build(cfg)
	logger.FromContext(ctx).Info(LogMsgPoolsLoaded,
		"path", path,
		"low", pools.Low.Len(),
		"high", pools.High.Len(),
		"elite", pools.Elite.Len())
	return pools, nil
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.ItemsSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	return &config, nil
}

// Validate checks the pool configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Tiers) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNoTiersDefined)
	}

	seenTiers := make(map[Tier]bool, len(config.Tiers))
	seenNames := make(map[string]bool)
	for i := range config.Tiers {
		tier := &config.Tiers[i]

		if seenTiers[tier.Tier] {
			return fmt.Errorf(ErrFmtDuplicateTier, domain.ErrInvalidConfig, tier.Tier)
		}
		seenTiers[tier.Tier] = true

		if err := validation.Structs().ValidateStruct(tier); err != nil {
			return fmt.Errorf(ErrFmtTierInvalid, domain.ErrInvalidConfig, tier.Tier, err)
		}

		for _, def := range tier.Items {
			if seenNames[def.Name] {
				return fmt.Errorf(ErrFmtDuplicateName, domain.ErrInvalidConfig, def.Name)
			}
			seenNames[def.Name] = true

			if err := def.Validate(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Build creates the pools. Tiers missing from the config get empty pools.
func (l *itemLoader) Build(config *Config) *Pools {
	pools := &Pools{
		Low:   NewPool(TierLow, 1, 0),
		High:  NewPool(TierHigh, 1, 0),
		Elite: NewPool(TierElite, 1, 0),
	}

	for _, tier := range config.Tiers {
		items := make([]*Item, 0, len(tier.Items))
		for _, def := range tier.Items {
			items = append(items, def.Build())
		}
		pool := NewPool(tier.Tier, tier.Experience, tier.MaxProbability, items...)

		switch tier.Tier {
		case TierLow:
			pools.Low = pool
		case TierHigh:
			pools.High = pool
		case TierElite:
			pools.Elite = pool
		}
	}

	return pools
}
