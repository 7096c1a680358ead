package ids

import (
	"github.com/hectorgimenez/d2go/pkg/data/item"
)

// Base is an equippable base item with a fixed difficulty class.
type Base struct {
	Entry
	Tier item.Tier
}

// Rows are located by Key in the file on disk, the ids are used when a key
// is absent and the row has to be created.
var gems = NewTable([]Entry{
	{Name: "ChippedAmethyst", Key: "gcv", ID: 2060, File: FileItemNames},
	{Name: "FlawedAmethyst", Key: "gfv", ID: 2061, File: FileItemNames},
	{Name: "Amethyst", Key: "gsv", ID: 2062, File: FileItemNames},
	{Name: "FlawlessAmethyst", Key: "gzv", ID: 2063, File: FileItemNames},
	{Name: "PerfectAmethyst", Key: "gpv", ID: 2064, File: FileItemNames},
	{Name: "ChippedDiamond", Key: "gcw", ID: 2065, File: FileItemNames},
	{Name: "FlawedDiamond", Key: "gfw", ID: 2066, File: FileItemNames},
	{Name: "Diamond", Key: "gsw", ID: 2067, File: FileItemNames},
	{Name: "FlawlessDiamond", Key: "glw", ID: 2068, File: FileItemNames},
	{Name: "PerfectDiamond", Key: "gpw", ID: 2069, File: FileItemNames},
	{Name: "ChippedEmerald", Key: "gcg", ID: 2070, File: FileItemNames},
	{Name: "FlawedEmerald", Key: "gfg", ID: 2071, File: FileItemNames},
	{Name: "Emerald", Key: "gsg", ID: 2072, File: FileItemNames},
	{Name: "FlawlessEmerald", Key: "glg", ID: 2073, File: FileItemNames},
	{Name: "PerfectEmerald", Key: "gpg", ID: 2074, File: FileItemNames},
	{Name: "ChippedRuby", Key: "gcr", ID: 2075, File: FileItemNames},
	{Name: "FlawedRuby", Key: "gfr", ID: 2076, File: FileItemNames},
	{Name: "Ruby", Key: "gsr", ID: 2077, File: FileItemNames},
	{Name: "FlawlessRuby", Key: "glr", ID: 2078, File: FileItemNames},
	{Name: "PerfectRuby", Key: "gpr", ID: 2079, File: FileItemNames},
	{Name: "ChippedSapphire", Key: "gcb", ID: 2080, File: FileItemNames},
	{Name: "FlawedSapphire", Key: "gfb", ID: 2081, File: FileItemNames},
	{Name: "Sapphire", Key: "gsb", ID: 2082, File: FileItemNames},
	{Name: "FlawlessSapphire", Key: "glb", ID: 2083, File: FileItemNames},
	{Name: "PerfectSapphire", Key: "gpb", ID: 2084, File: FileItemNames},
	{Name: "ChippedTopaz", Key: "gcy", ID: 2085, File: FileItemNames},
	{Name: "FlawedTopaz", Key: "gfy", ID: 2086, File: FileItemNames},
	{Name: "Topaz", Key: "gsy", ID: 2087, File: FileItemNames},
	{Name: "FlawlessTopaz", Key: "gly", ID: 2088, File: FileItemNames},
	{Name: "PerfectTopaz", Key: "gpy", ID: 2089, File: FileItemNames},
	{Name: "ChippedSkull", Key: "skc", ID: 2090, File: FileItemNames},
	{Name: "FlawedSkull", Key: "skf", ID: 2091, File: FileItemNames},
	{Name: "Skull", Key: "sku", ID: 2092, File: FileItemNames},
	{Name: "FlawlessSkull", Key: "skl", ID: 2093, File: FileItemNames},
	{Name: "PerfectSkull", Key: "skz", ID: 2094, File: FileItemNames},
})

var potions = NewTable([]Entry{
	{Name: "MinorHealingPotion", Key: "hp1", ID: 2040, File: FileItemNames},
	{Name: "LightHealingPotion", Key: "hp2", ID: 2041, File: FileItemNames},
	{Name: "HealingPotion", Key: "hp3", ID: 2042, File: FileItemNames},
	{Name: "GreaterHealingPotion", Key: "hp4", ID: 2043, File: FileItemNames},
	{Name: "SuperHealingPotion", Key: "hp5", ID: 2044, File: FileItemNames},
	{Name: "MinorManaPotion", Key: "mp1", ID: 2045, File: FileItemNames},
	{Name: "LightManaPotion", Key: "mp2", ID: 2046, File: FileItemNames},
	{Name: "ManaPotion", Key: "mp3", ID: 2047, File: FileItemNames},
	{Name: "GreaterManaPotion", Key: "mp4", ID: 2048, File: FileItemNames},
	{Name: "SuperManaPotion", Key: "mp5", ID: 2049, File: FileItemNames},
	{Name: "RejuvenationPotion", Key: "rvs", ID: 2050, File: FileItemNames},
	{Name: "FullRejuvenationPotion", Key: "rvl", ID: 2051, File: FileItemNames},
	{Name: "StaminaPotion", Key: "vps", ID: 2052, File: FileItemNames},
	{Name: "AntidotePotion", Key: "yps", ID: 2053, File: FileItemNames},
	{Name: "ThawingPotion", Key: "wms", ID: 2054, File: FileItemNames},
})

var common = NewTable([]Entry{
	{Name: "KeyOfTerror", Key: "pk1", ID: 2000, File: FileItemNames},
	{Name: "KeyOfHate", Key: "pk2", ID: 2001, File: FileItemNames},
	{Name: "KeyOfDestruction", Key: "pk3", ID: 2002, File: FileItemNames},
	{Name: "TwistedEssenceOfSuffering", Key: "tes", ID: 2003, File: FileItemNames},
	{Name: "ChargedEssenceOfHatred", Key: "ceh", ID: 2004, File: FileItemNames},
	{Name: "BurningEssenceOfTerror", Key: "bet", ID: 2005, File: FileItemNames},
	{Name: "FesteringEssenceOfDestruction", Key: "fed", ID: 2006, File: FileItemNames},
	{Name: "TokenofAbsolution", Key: "toa", ID: 2007, File: FileItemNames},
	{Name: "Key", Key: "key", ID: 2008, File: FileItemNames},
	{Name: "ScrollOfTownPortal", Key: "tsc", ID: 2009, File: FileItemNames},
	{Name: "ScrollOfIdentify", Key: "isc", ID: 2010, File: FileItemNames},
	{Name: "TomeOfTownPortal", Key: "tbk", ID: 2011, File: FileItemNames},
	{Name: "TomeOfIdentify", Key: "ibk", ID: 2012, File: FileItemNames},
	{Name: "Arrows", Key: "aqv", ID: 2013, File: FileItemNames},
	{Name: "Bolts", Key: "cqv", ID: 2014, File: FileItemNames},
	{Name: "Gold", Key: "gld", ID: 4010, File: FileItemModifiers},
})

var bases = NewTable([]Base{
	{Entry{Name: "Cap", Key: "cap", ID: 1000, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "WarHat", Key: "xap", ID: 1001, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "Shako", Key: "uap", ID: 1002, File: FileItemNames}, item.TierElite},
	{Entry{Name: "SkullCap", Key: "skp", ID: 1003, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "Sallet", Key: "xkp", ID: 1004, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "Armet", Key: "ukp", ID: 1005, File: FileItemNames}, item.TierElite},
	{Entry{Name: "Helm", Key: "hlm", ID: 1006, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "Casque", Key: "xlm", ID: 1007, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "GiantConch", Key: "uhl", ID: 1008, File: FileItemNames}, item.TierElite},
	{Entry{Name: "QuiltedArmor", Key: "qui", ID: 1009, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "GhostArmor", Key: "xui", ID: 1010, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "DuskShroud", Key: "uui", ID: 1011, File: FileItemNames}, item.TierElite},
	{Entry{Name: "LightPlate", Key: "ltp", ID: 1012, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "MagePlate", Key: "xtp", ID: 1013, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "ArchonPlate", Key: "utp", ID: 1014, File: FileItemNames}, item.TierElite},
	{Entry{Name: "Sash", Key: "lbl", ID: 1015, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "DemonhideSash", Key: "zlb", ID: 1016, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "SpiderwebSash", Key: "ulc", ID: 1017, File: FileItemNames}, item.TierElite},
	{Entry{Name: "Boots", Key: "lbt", ID: 1018, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "DemonhideBoots", Key: "xlb", ID: 1019, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "WyrmhideBoots", Key: "ulb", ID: 1020, File: FileItemNames}, item.TierElite},
	{Entry{Name: "LeatherGloves", Key: "lgl", ID: 1021, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "DemonhideGloves", Key: "xlg", ID: 1022, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "BrambleMitts", Key: "ulg", ID: 1023, File: FileItemNames}, item.TierElite},
	{Entry{Name: "KiteShield", Key: "kit", ID: 1024, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "DragonShield", Key: "xit", ID: 1025, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "Monarch", Key: "uit", ID: 1026, File: FileItemNames}, item.TierElite},
	{Entry{Name: "CrystalSword", Key: "crs", ID: 1027, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "DimensionalBlade", Key: "9cr", ID: 1028, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "PhaseBlade", Key: "7cr", ID: 1029, File: FileItemNames}, item.TierElite},
	{Entry{Name: "Flail", Key: "fla", ID: 1030, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "Knout", Key: "9fl", ID: 1031, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "Scourge", Key: "7fl", ID: 1032, File: FileItemNames}, item.TierElite},
	{Entry{Name: "Javelin", Key: "jav", ID: 1033, File: FileItemNames}, item.TierNormal},
	{Entry{Name: "WarJavelin", Key: "9ja", ID: 1034, File: FileItemNames}, item.TierExceptional},
	{Entry{Name: "HyperionJavelin", Key: "7ja", ID: 1035, File: FileItemNames}, item.TierElite},
})

// QualityRows holds the shared "Low Quality" and "Superior" affix rows.
type QualityRows struct {
	// LowQuality rows share one user text; the first row is the reference row.
	LowQuality []Entry
	Superior   Entry
}

var qualityRows = QualityRows{
	LowQuality: []Entry{
		{Name: "LowQuality", Key: "Low Quality", ID: 1723, File: FileItemNameAffix},
		{Name: "Damaged", Key: "Damaged", ID: 1724, File: FileItemNameAffix},
		{Name: "Cracked", Key: "Cracked", ID: 1725, File: FileItemNameAffix},
		{Name: "Crude", Key: "Crude", ID: 20910, File: FileItemNameAffix},
	},
	Superior: Entry{Name: "Superior", Key: "Hiquality", ID: 1727, File: FileItemNameAffix},
}

// QualityFor returns the rows a quality prefix is written to.
func (q QualityRows) QualityFor(quality item.Quality) []Entry {
	switch quality {
	case item.QualityLowQuality:
		return q.LowQuality
	case item.QualitySuperior:
		return []Entry{q.Superior}
	}
	return nil
}
