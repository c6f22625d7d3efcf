package engine

import (
	"strconv"
	"strings"

	"terminus-veil/internal/domain"
	"terminus-veil/internal/systems"
	"terminus-veil/pkg/api"
)

// BuildState создает "снимок" партии для клиента. Только чтение:
// состояние симуляции не меняется.
func (g *Game) BuildState() *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:     "UPDATE",
		Turn:     g.Scheduler.Turn(),
		Grid:     &api.GridMeta{Width: g.Grid.Width, Height: g.Grid.Height},
		Map:      g.buildMap(),
		Player:   g.playerView(),
		Progress: g.progressView(),
		Offer:    g.offerView(),
		Logs:     g.Log.Entries(),
		GameOver: g.State.GameOver,
		Victory:  g.State.Victory,
	}

	// Монстры и предметы - только в поле зрения
	for _, m := range g.Monsters.Living() {
		if !g.Vision.IsVisible(m.Pos) {
			continue
		}
		glyph := api.MonsterGlyph(m.Name)
		resp.Monsters = append(resp.Monsters, api.MonsterView{
			ID:     wireID(m.ID),
			Name:   m.Name,
			Pos:    point(m.Pos),
			Symbol: glyph.Symbol,
			Color:  glyph.Color,
			Stats:  statsView(m.Stats, 0),
		})
	}

	for _, it := range g.Items.Visible(g.Vision) {
		glyph := api.ItemGlyph(it.Kind.Token())
		resp.Items = append(resp.Items, api.ItemView{
			ID:     wireID(it.ID),
			Kind:   it.Kind.Token(),
			Name:   it.Kind.String(),
			Pos:    point(it.Pos),
			Symbol: glyph.Symbol,
			Color:  glyph.Color,
			Value:  it.Value,
		})
	}

	// Алтари запоминаются вместе с картой
	for _, a := range g.Sacrifices.Altars() {
		if !g.Vision.IsExplored(a.Pos) {
			continue
		}
		glyph := api.AltarGlyph
		if a.Used {
			glyph = api.UsedAltar
		}
		resp.Altars = append(resp.Altars, api.AltarView{
			ID:     wireID(a.ID),
			Pos:    point(a.Pos),
			Used:   a.Used,
			Symbol: glyph.Symbol,
			Color:  glyph.Color,
		})
	}

	return resp
}

// buildMap - исследованные тайлы в порядке строк.
func (g *Game) buildMap() []api.TileView {
	explored := g.Vision.Explored()
	out := make([]api.TileView, 0, len(explored))

	for _, p := range explored {
		kind := g.Grid.AtPos(p)
		visible := g.Vision.IsVisible(p)

		glyph := api.TileGlyph(kind.String())
		if kind == domain.TileFloor && !visible {
			glyph = api.ExploredFloor
		}

		out = append(out, api.TileView{
			X: p.X, Y: p.Y,
			Kind:       kind.String(),
			Symbol:     glyph.Symbol,
			Color:      glyph.Color,
			IsVisible:  visible,
			IsExplored: true,
		})
	}
	return out
}

func (g *Game) playerView() *api.PlayerView {
	p := g.Player
	inv := api.InventoryView{Items: []api.StackView{}, Gold: p.Inventory.Gold}
	for _, kind := range p.Inventory.Kinds() {
		inv.Items = append(inv.Items, api.StackView{
			Kind:  kind.Token(),
			Name:  kind.String(),
			Count: p.Inventory.Count(kind),
		})
	}

	return &api.PlayerView{
		Pos:       point(p.Pos),
		Symbol:    api.PlayerGlyph.Symbol,
		Color:     api.PlayerGlyph.Color,
		Stats:     statsView(p.Stats, p.Status.TempAttackBuff),
		Status:    statusView(p.Status),
		Inventory: inv,
		Sight:     g.SightRadius(),
	}
}

func (g *Game) progressView() *api.ProgressView {
	return &api.ProgressView{
		Level:              g.State.Level,
		Score:              g.State.Score,
		SacrificesRequired: g.Sacrifices.Required(),
		SacrificesMade:     g.Sacrifices.Total(),
		ExitOpen:           g.Sacrifices.CanUseExit(),
		MonstersLeft:       len(g.Monsters.Living()),
		ItemsLeft:          g.Items.Remaining(),
	}
}

// offerView - меню открытого алтаря или запрос подтверждения.
func (g *Game) offerView() *api.AltarOfferView {
	altar, selected := g.OpenAltar()
	if altar == nil {
		return nil
	}

	view := &api.AltarOfferView{
		AltarID:  wireID(altar.ID),
		Selected: selected,
		Options:  []api.OptionView{},
	}
	offer := g.Sacrifices.Offer(altar)
	for _, kind := range offer {
		info := kind.Info()
		view.Options = append(view.Options, api.OptionView{
			Kind:    strings.ToUpper(info.Name),
			Name:    info.Name,
			Cost:    info.Cost,
			Benefit: info.Benefit,
		})
	}

	if selected >= 0 && selected < len(offer) {
		view.Lines = systems.AltarPrompt(offer[selected])
	} else {
		view.Lines = systems.AltarMenu(altar)
	}
	return view
}

func statsView(s domain.Stats, buff int) api.StatsView {
	return api.StatsView{
		HP:     s.HP,
		MaxHP:  s.MaxHP,
		Attack: s.Attack,
		Buff:   buff,
		IsDead: s.Dead,
	}
}

func statusView(e domain.StatusEffects) api.StatusView {
	v := api.StatusView{
		CritChance:         e.CritChance,
		SightReduction:     e.SightReduction,
		TempBuffTurns:      e.TempBuffTurns,
		MovementPenalty:    e.MovementPenalty,
		HPRegeneration:     e.HPRegeneration,
		SurpriseMultiplier: e.SurpriseMultiplier,
		Vampiric:           e.Vampiric,
		CanUsePotions:      e.CanUsePotions,
	}
	for _, d := range []domain.Direction{domain.DirUp, domain.DirDown, domain.DirLeft, domain.DirRight} {
		if e.DisabledMoves.Has(d) {
			v.DisabledMoves = append(v.DisabledMoves, d.String())
		}
	}
	return v
}

func point(p domain.Position) api.Point {
	return api.Point{X: p.X, Y: p.Y}
}

// wireID - тот же формат, что и в JSON-сериализации EntityID.
func wireID(id domain.EntityID) string {
	return strconv.FormatUint(uint64(id), 10)
}
