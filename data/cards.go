// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package data

// TarotName enumerates tarot cards. TheSoul is the only one that carries
// the Soul marker (spec.md §3 invariant).
type TarotName uint8

const (
	TarotFool TarotName = iota
	TarotMagician
	TarotHighPriestess
	TarotEmpress
	TarotEmperor
	TarotHierophant
	TarotLovers
	TarotChariot
	TarotJustice
	TarotHermit
	TarotWheelOfFortune
	TarotStrength
	TarotHangedMan
	TarotDeath
	TarotTemperance
	TarotDevil
	TarotTower
	TarotStar
	TarotMoon
	TarotSun
	TarotJudgement
	TarotWorld
	TarotTheSoul
)

// SoulTarotType is TarotTheSoul's base-type value, used by item.Item.IsSoul.
const SoulTarotType = uint8(TarotTheSoul)

var tarotNames = map[string]TarotName{
	"fool": TarotFool, "magician": TarotMagician, "highpriestess": TarotHighPriestess,
	"empress": TarotEmpress, "emperor": TarotEmperor, "hierophant": TarotHierophant,
	"lovers": TarotLovers, "chariot": TarotChariot, "justice": TarotJustice,
	"hermit": TarotHermit, "wheeloffortune": TarotWheelOfFortune, "strength": TarotStrength,
	"hangedman": TarotHangedMan, "death": TarotDeath, "temperance": TarotTemperance,
	"devil": TarotDevil, "tower": TarotTower, "star": TarotStar, "moon": TarotMoon,
	"sun": TarotSun, "judgement": TarotJudgement, "world": TarotWorld, "thesoul": TarotTheSoul,
}

func ResolveTarot(name string) (TarotName, bool) { t, ok := tarotNames[name]; return t, ok }
func TarotNameCandidates() []string              { return keysOf(tarotNames) }

// PlanetName enumerates planet cards.
type PlanetName uint8

const (
	PlanetPluto PlanetName = iota
	PlanetMercury
	PlanetUranus
	PlanetVenus
	PlanetSaturn
	PlanetJupiter
	PlanetEarth
	PlanetMars
	PlanetNeptune
	PlanetPlanetX
	PlanetCeres
	PlanetEris
)

var planetNames = map[string]PlanetName{
	"pluto": PlanetPluto, "mercury": PlanetMercury, "uranus": PlanetUranus,
	"venus": PlanetVenus, "saturn": PlanetSaturn, "jupiter": PlanetJupiter,
	"earth": PlanetEarth, "mars": PlanetMars, "neptune": PlanetNeptune,
	"planetx": PlanetPlanetX, "ceres": PlanetCeres, "eris": PlanetEris,
}

func ResolvePlanet(name string) (PlanetName, bool) { p, ok := planetNames[name]; return p, ok }
func PlanetNameCandidates() []string               { return keysOf(planetNames) }

// SpectralName enumerates spectral cards. BlackHole is the other Soul
// carrier alongside TarotTheSoul.
type SpectralName uint8

const (
	SpectralFamiliar SpectralName = iota
	SpectralGrim
	SpectralIncantation
	SpectralTalisman
	SpectralAura
	SpectralWraith
	SpectralSigil
	SpectralOuija
	SpectralEctoplasm
	SpectralImmolate
	SpectralAnkh
	SpectralDeja
	SpectralHex
	SpectralTrance
	SpectralMedium
	SpectralCryptid
	SpectralBlackHole
)

const BlackHoleSpectralType = uint8(SpectralBlackHole)

var spectralNames = map[string]SpectralName{
	"familiar": SpectralFamiliar, "grim": SpectralGrim, "incantation": SpectralIncantation,
	"talisman": SpectralTalisman, "aura": SpectralAura, "wraith": SpectralWraith,
	"sigil": SpectralSigil, "ouija": SpectralOuija, "ectoplasm": SpectralEctoplasm,
	"immolate": SpectralImmolate, "ankh": SpectralAnkh, "deja": SpectralDeja,
	"hex": SpectralHex, "trance": SpectralTrance, "medium": SpectralMedium,
	"cryptid": SpectralCryptid, "blackhole": SpectralBlackHole,
}

func ResolveSpectral(name string) (SpectralName, bool) { s, ok := spectralNames[name]; return s, ok }
func SpectralNameCandidates() []string                 { return keysOf(spectralNames) }
