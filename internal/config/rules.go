package config

import (
	"fmt"
	"os"
	"tactics-core/internal/domain"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Rules - файл правил партии в том виде, в каком он лежит в YAML.
// Все ссылки между разделами идут по именам; Build проверяет их и собирает domain.Ruleset.
type Rules struct {
	Diagonal bool `yaml:"diagonal"`

	// MissingCost - что делать, если для пары (местность, тип движения) нет цены:
	// "impassable" (по умолчанию) или "default" (тогда берется DefaultCost)
	MissingCost string `yaml:"missing_cost"`
	DefaultCost int    `yaml:"default_cost"`

	TerrainClasses []string      `yaml:"terrain_classes"`
	TerrainTypes   []TerrainDef  `yaml:"terrain_types"`
	MovementTypes  []string      `yaml:"movement_types"`
	MovementCosts  []CostDef     `yaml:"movement_costs"`
	ObjectClasses  []string      `yaml:"object_classes"`
	ObjectGroups   []GroupDef    `yaml:"object_groups"`
	ObjectTypes    []TypeDef     `yaml:"object_types"`
	Stacking       []StackingDef `yaml:"stacking"`
	Templates      []TemplateDef `yaml:"templates"`
	Layouts        []LayoutDef   `yaml:"layouts"`
	Generator      GeneratorDef  `yaml:"generator"`
	Geometry       GeometryDef   `yaml:"geometry"`
}

type TerrainDef struct {
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
}

// CostDef - цены входа на местность для одного типа движения
type CostDef struct {
	Movement string         `yaml:"movement"`
	Costs    map[string]int `yaml:"costs"` // terrain type -> cost
}

type GroupDef struct {
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
}

type TypeDef struct {
	Name  string `yaml:"name"`
	Group string `yaml:"group"`
}

// StackingDef - класс стека и сколько объектов этого класса влезает в тайл
type StackingDef struct {
	Class string `yaml:"class"`
	Max   int    `yaml:"max"`
}

type TemplateDef struct {
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type"`
	Stacking string       `yaml:"stacking"`
	Movement *MovementDef `yaml:"movement,omitempty"`
	Health   *HealthDef   `yaml:"health,omitempty"`
	Attack   *AttackDef   `yaml:"attack,omitempty"`
}

type MovementDef struct {
	MovePoints     int      `yaml:"move_points"`
	Type           string   `yaml:"type"`
	TerrainClasses []string `yaml:"terrain_classes"`
	// Правила по конкретной местности перекрывают классы
	TerrainTypes map[string]bool `yaml:"terrain_types"`
	// Можно ли проходить через тайлы с такими объектами
	ObjectTypes   map[string]bool `yaml:"object_types"`
	ObjectGroups  map[string]bool `yaml:"object_groups"`
	ObjectClasses map[string]bool `yaml:"object_classes"`
}

type HealthDef struct {
	Max           int    `yaml:"max"`
	OnDeath       string `yaml:"on_death"` // destroy | capture
	RestoreAt     int    `yaml:"restore_at"`
	NonAttackable bool   `yaml:"non_attackable"`
	Invulnerable  bool   `yaml:"invulnerable"`
}

type AttackDef struct {
	Default int            `yaml:"default"`
	Range   int            `yaml:"range"`
	PerType map[string]int `yaml:"per_type"`
}

// LayoutDef - нарисованная карта. Rows[0] - строка y=0, символы переводятся через Legend.
type LayoutDef struct {
	Name   string            `yaml:"name"`
	Legend map[string]string `yaml:"legend"`
	Rows   []string          `yaml:"rows"`
}

type GeneratorDef struct {
	Smoothing int         `yaml:"smoothing"`
	Weights   []WeightDef `yaml:"weights"`
}

type WeightDef struct {
	Terrain string `yaml:"terrain"`
	Weight  int    `yaml:"weight"`
}

type GeometryDef struct {
	Origin   [2]float64 `yaml:"origin"`
	TileSize [2]float64 `yaml:"tile_size"`
}

// LoadRules читает правила из YAML. Если файла нет, возвращает правила по умолчанию.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rules, nil
		}
		return rules, fmt.Errorf("reading rules %s: %w", path, err)
	}

	// Если файл есть, он заменяет значения по умолчанию полностью, без слияния
	var fromFile Rules
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return rules, fmt.Errorf("parsing rules %s: %w", path, err)
	}
	return fromFile, nil
}

// Build проверяет все ссылки по именам и собирает domain.Ruleset
func (r Rules) Build() (*domain.Ruleset, error) {
	b := builder{
		rs: &domain.Ruleset{
			TerrainTypes:    make(map[string]domain.TerrainType),
			MovementTypes:   make(map[string]domain.MovementType),
			ObjectTypes:     make(map[string]domain.ObjectType),
			StackingClasses: make(map[string]domain.StackingClass),
			Templates:       make(map[string]domain.ObjectTemplate),
			Layouts:         make(map[string]domain.MapLayout),
			Diagonal:        r.Diagonal,
		},
		terrainClasses: make(map[string]domain.TerrainClass),
		objectClasses:  make(map[string]domain.ObjectClass),
		objectGroups:   make(map[string]domain.ObjectGroup),
	}

	steps := []func(Rules) error{
		b.terrain,
		b.movement,
		b.objects,
		b.stacking,
		b.templates,
		b.layouts,
		b.generator,
		b.geometry,
	}
	for _, step := range steps {
		if err := step(r); err != nil {
			return nil, err
		}
	}
	return b.rs, nil
}

type builder struct {
	rs *domain.Ruleset

	terrainClasses map[string]domain.TerrainClass
	objectClasses  map[string]domain.ObjectClass
	objectGroups   map[string]domain.ObjectGroup
}

func (b *builder) terrain(r Rules) error {
	for _, name := range r.TerrainClasses {
		b.terrainClasses[name] = domain.TerrainClass{Name: name}
	}
	for _, t := range r.TerrainTypes {
		class, ok := b.terrainClasses[t.Class]
		if !ok {
			return domain.ConfigErrorf("terrain %q: unknown terrain class %q", t.Name, t.Class)
		}
		b.rs.TerrainTypes[t.Name] = domain.TerrainType{Name: t.Name, Class: class}
	}
	return nil
}

func (b *builder) movement(r Rules) error {
	var policy domain.MissingCostPolicy
	switch r.MissingCost {
	case "", "impassable":
		policy = domain.MissingCostImpassable
	case "default":
		policy = domain.MissingCostDefault
	default:
		return domain.ConfigErrorf("unknown missing_cost policy %q", r.MissingCost)
	}

	costs := domain.NewTerrainMovementCosts()
	costs.Missing = policy
	costs.DefaultCost = r.DefaultCost
	for _, name := range r.MovementTypes {
		mt := domain.MovementType{Name: name}
		b.rs.MovementTypes[name] = mt
		costs.RegisterMovementType(mt)
	}

	for _, def := range r.MovementCosts {
		mt, ok := b.rs.MovementTypes[def.Movement]
		if !ok {
			return domain.ConfigErrorf("movement costs: unknown movement type %q", def.Movement)
		}
		for terrainName, cost := range def.Costs {
			t, err := b.rs.Terrain(terrainName)
			if err != nil {
				return err
			}
			if cost < 0 {
				return domain.ConfigErrorf("movement costs: negative cost %d for %s/%s", cost, terrainName, def.Movement)
			}
			costs.Set(t, mt, cost)
		}
	}
	b.rs.Costs = costs
	return nil
}

func (b *builder) objects(r Rules) error {
	for _, name := range r.ObjectClasses {
		b.objectClasses[name] = domain.ObjectClass{Name: name}
	}
	for _, g := range r.ObjectGroups {
		class, ok := b.objectClasses[g.Class]
		if !ok {
			return domain.ConfigErrorf("object group %q: unknown object class %q", g.Name, g.Class)
		}
		b.objectGroups[g.Name] = domain.ObjectGroup{Name: g.Name, Class: class}
	}
	for _, t := range r.ObjectTypes {
		group, ok := b.objectGroups[t.Group]
		if !ok {
			return domain.ConfigErrorf("object type %q: unknown object group %q", t.Name, t.Group)
		}
		b.rs.ObjectTypes[t.Name] = domain.ObjectType{Name: t.Name, Group: group}
	}
	return nil
}

func (b *builder) stacking(r Rules) error {
	limits := make(map[domain.StackingClass]int, len(r.Stacking))
	for _, s := range r.Stacking {
		if s.Max < 0 {
			return domain.ConfigErrorf("stacking class %q: negative max", s.Class)
		}
		class := domain.StackingClass{Name: s.Class}
		b.rs.StackingClasses[s.Class] = class
		limits[class] = s.Max
	}
	b.rs.TileStacking = domain.NewTileStackingRules(limits)
	return nil
}

func (b *builder) templates(r Rules) error {
	for _, def := range r.Templates {
		tpl, err := b.template(def)
		if err != nil {
			return fmt.Errorf("template %q: %w", def.Name, err)
		}
		b.rs.Templates[def.Name] = tpl
	}
	return nil
}

func (b *builder) template(def TemplateDef) (domain.ObjectTemplate, error) {
	objType, ok := b.rs.ObjectTypes[def.Type]
	if !ok {
		return domain.ObjectTemplate{}, domain.ConfigErrorf("unknown object type %q", def.Type)
	}
	stacking, ok := b.rs.StackingClasses[def.Stacking]
	if !ok {
		return domain.ObjectTemplate{}, domain.ConfigErrorf("unknown stacking class %q", def.Stacking)
	}

	tpl := domain.ObjectTemplate{Name: def.Name, Type: objType, Stacking: stacking}

	if mv := def.Movement; mv != nil {
		comp, err := b.movementComponent(*mv)
		if err != nil {
			return domain.ObjectTemplate{}, err
		}
		tpl.Movement = comp
	}

	if h := def.Health; h != nil {
		if h.Max <= 0 {
			return domain.ObjectTemplate{}, domain.ConfigErrorf("health max must be positive")
		}
		onDeath := domain.OnDeathDestroy
		switch h.OnDeath {
		case "", "destroy":
		case "capture":
			onDeath = domain.OnDeathCapture
		default:
			return domain.ObjectTemplate{}, domain.ConfigErrorf("unknown on_death %q", h.OnDeath)
		}
		tpl.Health = &domain.HealthComponent{
			Current:       h.Max,
			Max:           h.Max,
			OnDeath:       onDeath,
			RestoreAt:     h.RestoreAt,
			NonAttackable: h.NonAttackable,
			Invulnerable:  h.Invulnerable,
		}
	}

	if a := def.Attack; a != nil {
		perType := make(map[domain.ObjectType]int, len(a.PerType))
		for name, power := range a.PerType {
			t, ok := b.rs.ObjectTypes[name]
			if !ok {
				return domain.ObjectTemplate{}, domain.ConfigErrorf("attack: unknown object type %q", name)
			}
			perType[t] = power
		}
		tpl.Attack = &domain.AttackComponent{PerType: perType, Default: a.Default, Range: a.Range}
	}
	return tpl, nil
}

func (b *builder) movementComponent(def MovementDef) (*domain.MovementComponent, error) {
	mt, ok := b.rs.MovementTypes[def.Type]
	if !ok {
		return nil, domain.ConfigErrorf("unknown movement type %q", def.Type)
	}
	if def.MovePoints < 0 {
		return nil, domain.ConfigErrorf("negative move points")
	}

	classes := make([]domain.TerrainClass, 0, len(def.TerrainClasses))
	for _, name := range def.TerrainClasses {
		c, ok := b.terrainClasses[name]
		if !ok {
			return nil, domain.ConfigErrorf("unknown terrain class %q", name)
		}
		classes = append(classes, c)
	}
	types := make(map[domain.TerrainType]bool, len(def.TerrainTypes))
	for name, allowed := range def.TerrainTypes {
		t, err := b.rs.Terrain(name)
		if err != nil {
			return nil, err
		}
		types[t] = allowed
	}

	comp := &domain.MovementComponent{
		MovePoints: def.MovePoints,
		Type:       mt,
		Terrain:    domain.NewObjectTerrainMovementRules(classes, types),
	}

	if len(def.ObjectTypes)+len(def.ObjectGroups)+len(def.ObjectClasses) == 0 {
		return comp, nil
	}
	rules := domain.NewObjectTypeMovementRules()
	for name, allowed := range def.ObjectTypes {
		t, ok := b.rs.ObjectTypes[name]
		if !ok {
			return nil, domain.ConfigErrorf("unknown object type %q", name)
		}
		rules.Types[t] = allowed
	}
	for name, allowed := range def.ObjectGroups {
		g, ok := b.objectGroups[name]
		if !ok {
			return nil, domain.ConfigErrorf("unknown object group %q", name)
		}
		rules.Groups[g] = allowed
	}
	for name, allowed := range def.ObjectClasses {
		c, ok := b.objectClasses[name]
		if !ok {
			return nil, domain.ConfigErrorf("unknown object class %q", name)
		}
		rules.Classes[c] = allowed
	}
	comp.TypeRules = rules
	return comp, nil
}

func (b *builder) layouts(r Rules) error {
	for _, def := range r.Layouts {
		if len(def.Rows) == 0 || len(def.Rows[0]) == 0 {
			return domain.ConfigErrorf("layout %q is empty", def.Name)
		}
		// Ширина в символах: легенда может быть не ASCII
		width, height := utf8.RuneCountInString(def.Rows[0]), len(def.Rows)

		terrain := make([]domain.TerrainType, 0, width*height)
		for y, row := range def.Rows {
			if w := utf8.RuneCountInString(row); w != width {
				return domain.ConfigErrorf("layout %q: row %d has width %d, expected %d", def.Name, y, w, width)
			}
			for _, ch := range row {
				name, ok := def.Legend[string(ch)]
				if !ok {
					return domain.ConfigErrorf("layout %q: symbol %q is not in legend", def.Name, ch)
				}
				t, err := b.rs.Terrain(name)
				if err != nil {
					return fmt.Errorf("layout %q: %w", def.Name, err)
				}
				terrain = append(terrain, t)
			}
		}
		b.rs.Layouts[def.Name] = domain.MapLayout{Name: def.Name, Width: width, Height: height, Terrain: terrain}
	}
	return nil
}

func (b *builder) generator(r Rules) error {
	b.rs.Generator.Smoothing = r.Generator.Smoothing
	for _, w := range r.Generator.Weights {
		t, err := b.rs.Terrain(w.Terrain)
		if err != nil {
			return fmt.Errorf("generator: %w", err)
		}
		if w.Weight < 0 {
			return domain.ConfigErrorf("generator: negative weight for %q", w.Terrain)
		}
		b.rs.Generator.Weights = append(b.rs.Generator.Weights, domain.TerrainWeight{Terrain: t, Weight: w.Weight})
	}
	return nil
}

func (b *builder) geometry(r Rules) error {
	g := domain.DefaultGeometry()
	g.Origin = mgl64.Vec2{r.Geometry.Origin[0], r.Geometry.Origin[1]}
	if size := r.Geometry.TileSize; size != [2]float64{} {
		if size[0] <= 0 || size[1] <= 0 {
			return domain.ConfigErrorf("geometry: tile size must be positive")
		}
		g.TileSize = mgl64.Vec2{size[0], size[1]}
	}
	b.rs.Geometry = g
	return nil
}
