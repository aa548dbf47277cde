// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package data

// VoucherName enumerates vouchers. Some vouchers feed back into stream
// weighting (Overstock/OverstockPlus raise the shop slot count,
// CrystalBall/OmenGlobe raise the tarot rate) — see ShopWeights and
// ShopSlotCount; the spectral rate comes from the Ghost deck, not a
// voucher.
type VoucherName uint8

const (
	VoucherOverstock VoucherName = iota
	VoucherOverstockPlus
	VoucherClearanceSale
	VoucherLiquidation
	VoucherHone
	VoucherGlowUp
	VoucherRerollSurplus
	VoucherRerollGlut
	VoucherCrystalBall
	VoucherOmenGlobe
	VoucherTelescope
	VoucherObservatory
	VoucherGrabber
	VoucherNachoTong
	VoucherWasteful
	VoucherRecyclomancy
	VoucherTarotMerchant
	VoucherTarotTycoon
	VoucherPlanetMerchant
	VoucherPlanetTycoon
	VoucherSeedMoney
	VoucherMoneyTree
	VoucherBlank
	VoucherAntimatter
	VoucherMagicTrick
	VoucherIllusion
	VoucherHieroglyph
	VoucherPetroglyph
	VoucherDirectorsCut
	VoucherRetcon
	VoucherPaintBrush
	VoucherPalette
)

var voucherNames = map[string]VoucherName{
	"overstock": VoucherOverstock, "overstockplus": VoucherOverstockPlus,
	"clearancesale": VoucherClearanceSale, "liquidation": VoucherLiquidation,
	"hone": VoucherHone, "glowup": VoucherGlowUp,
	"rerollsurplus": VoucherRerollSurplus, "rerollglut": VoucherRerollGlut,
	"crystalball": VoucherCrystalBall, "omenglobe": VoucherOmenGlobe,
	"telescope": VoucherTelescope, "observatory": VoucherObservatory,
	"grabber": VoucherGrabber, "nachotong": VoucherNachoTong,
	"wasteful": VoucherWasteful, "recyclomancy": VoucherRecyclomancy,
	"tarotmerchant": VoucherTarotMerchant, "tarottycoon": VoucherTarotTycoon,
	"planetmerchant": VoucherPlanetMerchant, "planettycoon": VoucherPlanetTycoon,
	"seedmoney": VoucherSeedMoney, "moneytree": VoucherMoneyTree,
	"blank": VoucherBlank, "antimatter": VoucherAntimatter,
	"magictrick": VoucherMagicTrick, "illusion": VoucherIllusion,
	"hieroglyph": VoucherHieroglyph, "petroglyph": VoucherPetroglyph,
	"directorscut": VoucherDirectorsCut, "retcon": VoucherRetcon,
	"paintbrush": VoucherPaintBrush, "palette": VoucherPalette,
}

func ResolveVoucher(name string) (VoucherName, bool) { v, ok := voucherNames[name]; return v, ok }
func VoucherNameCandidates() []string                { return keysOf(voucherNames) }

// TagName enumerates pre-blind tags. Each ante offers two: small-blind
// then big-blind (spec.md §4.2 "Tag stream").
type TagName uint8

const (
	TagUncommon TagName = iota
	TagRare
	TagNegative
	TagFoil
	TagHolographic
	TagPolychrome
	TagInvestment
	TagVoucher
	TagBoss
	TagCharm
	TagMeteor
	TagBuffoon
	TagHandy
	TagGarbage
	TagEther
	TagCoupon
	TagDouble
	TagJuggle
	TagDSix
	TagTopUp
	TagSpeed
	TagOrbital
	TagEconomy
)

var tagNames = map[string]TagName{
	"uncommon": TagUncommon, "rare": TagRare, "negative": TagNegative, "foil": TagFoil,
	"holographic": TagHolographic, "polychrome": TagPolychrome, "investment": TagInvestment,
	"voucher": TagVoucher, "boss": TagBoss, "charm": TagCharm, "meteor": TagMeteor,
	"buffoon": TagBuffoon, "handy": TagHandy, "garbage": TagGarbage, "ether": TagEther,
	"coupon": TagCoupon, "double": TagDouble, "juggle": TagJuggle, "dsix": TagDSix,
	"topup": TagTopUp, "speed": TagSpeed, "orbital": TagOrbital, "economy": TagEconomy,
}

func ResolveTag(name string) (TagName, bool) { t, ok := tagNames[name]; return t, ok }
func TagNameCandidates() []string            { return keysOf(tagNames) }

// BossName enumerates boss blinds, drawn from a global rotation with
// locked-boss memory (spec.md §4.2 "Boss stream").
type BossName uint8

const (
	BossTheHook BossName = iota
	BossTheClub
	BossTheWindow
	BossTheManacle
	BossTheEye
	BossTheMouth
	BossThePlant
	BossTheGoad
	BossTheWater
	BossTheWheel
	BossTheArm
	BossTheFish
	BossTheClique
	BossTheMark
	BossTheWall
	BossTheHouse
	BossThePsychic
	BossTheOx
	BossTheFlint
	BossCeruleanBell
	BossVerdantLeaf
	BossVioletVessel
	BossCrimsonHeart
	BossAmberAcorn
)

var bossNames = map[string]BossName{
	"thehook": BossTheHook, "theclub": BossTheClub, "thewindow": BossTheWindow,
	"themanacle": BossTheManacle, "theeye": BossTheEye, "themouth": BossTheMouth,
	"theplant": BossThePlant, "thegoad": BossTheGoad, "thewater": BossTheWater,
	"thewheel": BossTheWheel, "thearm": BossTheArm, "thefish": BossTheFish,
	"theclique": BossTheClique, "themark": BossTheMark, "thewall": BossTheWall,
	"thehouse": BossTheHouse, "thepsychic": BossThePsychic, "theox": BossTheOx,
	"theflint": BossTheFlint, "ceruleanbell": BossCeruleanBell, "verdantleaf": BossVerdantLeaf,
	"violetvessel": BossVioletVessel, "crimsonheart": BossCrimsonHeart, "ambercorn": BossAmberAcorn,
}

func ResolveBoss(name string) (BossName, bool) { b, ok := bossNames[name]; return b, ok }
func BossNameCandidates() []string             { return keysOf(bossNames) }
