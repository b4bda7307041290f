package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Default stage durations, in milliseconds.
const (
	defaultPrepTime     = 500
	defaultDeliveryTime = 700
	defaultPickupTime   = 300
)

type SimulationProfile struct {
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	Stages struct {
		PrepTime     int `json:"prepTime"` // All durations here are measured in milliseconds
		DeliveryTime int `json:"deliveryTime"`
		PickupTime   int `json:"pickupTime"`
	} `json:"stages"`
	DebugMode bool `json:"debugMode"`
}

// DefaultProfile returns the profile used when no file is given.
func DefaultProfile() SimulationProfile {
	p := SimulationProfile{
		Name: "default",
		Desc: "One kitchen, one courier, fixed stage durations.",
	}
	p.applyDefaults()
	return p
}

// LoadProfile reads a JSON simulation profile. An empty path yields DefaultProfile.
func LoadProfile(path string) (SimulationProfile, error) {
	if path == "" {
		return DefaultProfile(), nil
	}

	var profile SimulationProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to open profile definition file: %w", err)
	}

	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to decode profile json data: %w", err)
	}

	if err := profile.validate(); err != nil {
		return profile, fmt.Errorf("invalid profile %v: %w", path, err)
	}
	profile.applyDefaults()

	return profile, nil
}

func (p *SimulationProfile) applyDefaults() {
	if p.Stages.PrepTime == 0 {
		p.Stages.PrepTime = defaultPrepTime
	}
	if p.Stages.DeliveryTime == 0 {
		p.Stages.DeliveryTime = defaultDeliveryTime
	}
	if p.Stages.PickupTime == 0 {
		p.Stages.PickupTime = defaultPickupTime
	}
}

func (p *SimulationProfile) validate() error {
	var problems []error
	if p.Stages.PrepTime < 0 {
		problems = append(problems, errors.New("stages.prepTime must be >= 0"))
	}
	if p.Stages.DeliveryTime < 0 {
		problems = append(problems, errors.New("stages.deliveryTime must be >= 0"))
	}
	if p.Stages.PickupTime < 0 {
		problems = append(problems, errors.New("stages.pickupTime must be >= 0"))
	}
	return errors.Join(problems...)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Describe prints the details of the simulation profile.
func (p SimulationProfile) Describe(w io.Writer) {
	fmt.Fprintf(w, "Profile name: %v\n", p.Name)
	fmt.Fprintf(w, "Description: %v\n", p.Desc)
	fmt.Fprintf(w, "Prep time: %v\n", ms(p.Stages.PrepTime))
	fmt.Fprintf(w, "Delivery time: %v\n", ms(p.Stages.DeliveryTime))
	fmt.Fprintf(w, "Pickup time: %v\n", ms(p.Stages.PickupTime))
	fmt.Fprintf(w, "Debug Mode: %v\n", p.DebugMode)
}

// Pizzeria takes orders against the menu and runs them through the stages.
type Pizzeria struct {
	Profile SimulationProfile

	menu      *Menu
	kitchen   *Kitchen
	courier   *Courier
	analytics *Analytics
	out       io.Writer
}

type PizzeriaConfig struct {
	Profile   SimulationProfile
	Menu      *Menu
	Analytics *Analytics // Optional
	Out       io.Writer  // Defaults to stdout
	Sleep     Sleeper    // Defaults to time.Sleep
}

// NewPizzeria wires the kitchen and the courier to a shared output.
func NewPizzeria(cfg PizzeriaConfig) *Pizzeria {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Menu == nil {
		cfg.Menu = NewMenu()
	}

	opts := []StageOption{WithOutput(cfg.Out)}
	if cfg.Analytics != nil {
		opts = append(opts, WithObserver(cfg.Analytics.Observe))
	}

	return &Pizzeria{
		Profile: cfg.Profile,
		menu:    cfg.Menu,
		kitchen: NewKitchen(KitchenConfig{
			PrepTime:   ms(cfg.Profile.Stages.PrepTime),
			PickupTime: ms(cfg.Profile.Stages.PickupTime),
			Sleep:      cfg.Sleep,
			Options:    opts,
		}),
		courier:   NewCourier(ms(cfg.Profile.Stages.DeliveryTime), cfg.Sleep, opts...),
		analytics: cfg.Analytics,
		out:       cfg.Out,
	}
}

// Order prepares the requested pizza, then delivers it or leaves it for pickup.
// A pizza that is not on the menu gets a notice and ErrPizzaNotFound.
func (p *Pizzeria) Order(req OrderRequest) (*Order, error) {
	var size Size
	if req.Size != "" {
		s, err := ParseSize(req.Size)
		if err != nil {
			return nil, err
		}
		size = s
	}

	name := strings.TrimSpace(req.Pizza)
	pizza, err := p.menu.Find(name, size)
	if err != nil {
		if errors.Is(err, ErrPizzaNotFound) {
			fmt.Fprintf(p.out, "🚫 %v is not on the menu\n", name)
		}
		return nil, err
	}

	o := newOrder(pizza, req.Delivery, time.Now())
	log.Debug(fmt.Sprintf("Order %v placed: %v", o.Id, pizza))

	if err := p.kitchen.Prepare(o); err != nil {
		return o, err
	}

	if req.Delivery {
		err = p.courier.Deliver(o)
	} else {
		err = p.kitchen.Pickup(o)
	}
	if err != nil {
		return o, err
	}

	if p.analytics != nil {
		p.analytics.OrderCompleted()
	}
	log.Debug(o.String())
	return o, nil
}
