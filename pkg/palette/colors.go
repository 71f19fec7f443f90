package palette

import "github.com/brickforge/brickforge/pkg/brick"

// blockColors maps modern block names to LDraw colors. Common codes:
// 0=Black 1=Blue 2=Green 4=Red 5=Magenta 6=Brown 7=LtGray 8=DkGray
// 9=LtBlue 10=BrightGreen 11=LtCyan 13=Pink 14=Yellow 15=White 19=Tan
// 25=Orange 27=Lime 28=DkTan 41=TransLtCyan 47=TransClear 70=ReddishBrown
// 71=LtBluishGray 72=DkBluishGray 73=MedBlue 85=DkPurple 191=BrightLtOrange
// 288=DkGreen 320=DkRed 326=BrightLtYellow 378=SandGreen 484=DkOrange
var blockColors = map[string]brick.ColorID{
	// Basic terrain
	"stone": 71, "cobblestone": 72, "mossy_cobblestone": 378,
	"granite": 25, "polished_granite": 25, "diorite": 7, "polished_diorite": 7,
	"andesite": 8, "polished_andesite": 8,
	"grass_block": 10, "dirt": 6, "coarse_dirt": 6, "podzol": 6,
	"bedrock": 0, "sand": 19, "red_sand": 25, "gravel": 71,
	"sandstone": 19, "red_sandstone": 484, "smooth_sandstone": 19,

	// Ores and minerals
	"gold_ore": 14, "deepslate_gold_ore": 14, "nether_gold_ore": 14,
	"iron_ore": 71, "deepslate_iron_ore": 71,
	"coal_ore": 0, "deepslate_coal_ore": 0,
	"diamond_ore": 41, "deepslate_diamond_ore": 41,
	"emerald_ore": 10, "deepslate_emerald_ore": 10,
	"lapis_ore": 1, "deepslate_lapis_ore": 1,
	"redstone_ore": 4, "deepslate_redstone_ore": 4,
	"copper_ore": 484, "deepslate_copper_ore": 484,

	// Metal and mineral blocks
	"gold_block": 14, "iron_block": 71, "diamond_block": 41, "emerald_block": 10,
	"lapis_block": 1, "redstone_block": 4, "coal_block": 0,
	"copper_block": 484, "raw_copper_block": 484, "raw_iron_block": 71, "raw_gold_block": 14,
	"netherite_block": 0, "ancient_debris": 6,
	"amethyst_block": 85, "budding_amethyst": 85,

	// Glass, transparent
	"glass": 47, "glass_pane": 47, "tinted_glass": 8,
	"white_stained_glass": 47, "white_stained_glass_pane": 47,
	"orange_stained_glass": 182, "orange_stained_glass_pane": 182,
	"magenta_stained_glass": 113, "magenta_stained_glass_pane": 113,
	"light_blue_stained_glass": 41, "light_blue_stained_glass_pane": 41,
	"yellow_stained_glass": 46, "yellow_stained_glass_pane": 46,
	"lime_stained_glass": 35, "lime_stained_glass_pane": 35,
	"pink_stained_glass": 113, "pink_stained_glass_pane": 113,
	"gray_stained_glass": 40, "gray_stained_glass_pane": 40,
	"light_gray_stained_glass": 40, "light_gray_stained_glass_pane": 40,
	"cyan_stained_glass": 41, "cyan_stained_glass_pane": 41,
	"purple_stained_glass": 52, "purple_stained_glass_pane": 52,
	"blue_stained_glass": 33, "blue_stained_glass_pane": 33,
	"brown_stained_glass": 111, "brown_stained_glass_pane": 111,
	"green_stained_glass": 34, "green_stained_glass_pane": 34,
	"red_stained_glass": 36, "red_stained_glass_pane": 36,
	"black_stained_glass": 40, "black_stained_glass_pane": 40,

	// Wool, all 16 colors
	"white_wool": 15, "orange_wool": 25, "magenta_wool": 5, "light_blue_wool": 9,
	"yellow_wool": 14, "lime_wool": 27, "pink_wool": 13, "gray_wool": 8,
	"light_gray_wool": 7, "cyan_wool": 11, "purple_wool": 85, "blue_wool": 1,
	"brown_wool": 6, "green_wool": 2, "red_wool": 4, "black_wool": 0,

	// Carpet, same palette as wool
	"white_carpet": 15, "orange_carpet": 25, "magenta_carpet": 5, "light_blue_carpet": 9,
	"yellow_carpet": 14, "lime_carpet": 27, "pink_carpet": 13, "gray_carpet": 8,
	"light_gray_carpet": 7, "cyan_carpet": 11, "purple_carpet": 85, "blue_carpet": 1,
	"brown_carpet": 6, "green_carpet": 2, "red_carpet": 4, "black_carpet": 0,
	"moss_carpet": 10,

	// Concrete, all 16 colors
	"white_concrete": 15, "orange_concrete": 25, "magenta_concrete": 5, "light_blue_concrete": 9,
	"yellow_concrete": 14, "lime_concrete": 27, "pink_concrete": 13, "gray_concrete": 8,
	"light_gray_concrete": 7, "cyan_concrete": 11, "purple_concrete": 85, "blue_concrete": 1,
	"brown_concrete": 6, "green_concrete": 2, "red_concrete": 4, "black_concrete": 0,

	// Terracotta
	"terracotta": 28, "white_terracotta": 15, "orange_terracotta": 25, "magenta_terracotta": 5,
	"light_blue_terracotta": 9, "yellow_terracotta": 14, "lime_terracotta": 27, "pink_terracotta": 13,
	"gray_terracotta": 8, "light_gray_terracotta": 7, "cyan_terracotta": 11, "purple_terracotta": 85,
	"blue_terracotta": 1, "brown_terracotta": 6, "green_terracotta": 2, "red_terracotta": 4,
	"black_terracotta": 0,

	// Wood
	"oak_planks": 70, "spruce_planks": 6, "birch_planks": 19, "jungle_planks": 70,
	"acacia_planks": 484, "dark_oak_planks": 6, "mangrove_planks": 4, "cherry_planks": 13,
	"bamboo_planks": 14, "crimson_planks": 320, "warped_planks": 11,
	"oak_log": 70, "spruce_log": 6, "birch_log": 15, "jungle_log": 70,
	"acacia_log": 484, "dark_oak_log": 6, "mangrove_log": 70, "cherry_log": 13,
	"crimson_stem": 320, "warped_stem": 11, "bamboo_block": 14,

	// Leaves
	"oak_leaves": 2, "spruce_leaves": 288, "birch_leaves": 10, "jungle_leaves": 2,
	"acacia_leaves": 2, "dark_oak_leaves": 288, "mangrove_leaves": 2, "cherry_leaves": 13,
	"azalea_leaves": 2, "flowering_azalea_leaves": 13,

	// Nether
	"netherrack": 320, "nether_bricks": 320, "red_nether_bricks": 320,
	"soul_sand": 6, "soul_soil": 6, "basalt": 8, "smooth_basalt": 8, "blackstone": 0,
	"polished_blackstone": 0, "polished_blackstone_bricks": 0,
	"glowstone": 326, "shroomlight": 326,
	"nether_wart_block": 320, "warped_wart_block": 11,
	"crying_obsidian": 85, "respawn_anchor": 0,

	// End
	"end_stone": 326, "end_stone_bricks": 326, "purpur_block": 85, "purpur_pillar": 85,

	// Other
	"obsidian": 0, "bricks": 320, "stone_bricks": 71, "mossy_stone_bricks": 378,
	"cracked_stone_bricks": 72, "chiseled_stone_bricks": 71,
	"prismarine": 11, "prismarine_bricks": 11, "dark_prismarine": 288,
	"sea_lantern": 41, "ice": 41, "packed_ice": 41, "blue_ice": 41,
	"snow_block": 15, "snow": 15, "powder_snow": 15,
	"clay": 71, "mud": 6, "mud_bricks": 6, "packed_mud": 6,
	"water": 73, "lava": 25,
	"fire": 25, "soul_fire": 11,
	"tnt": 4, "bookshelf": 70, "hay_block": 14,
	"sponge": 14, "wet_sponge": 14,
	"melon": 10, "pumpkin": 25, "carved_pumpkin": 25, "jack_o_lantern": 25,
	"cactus": 288, "bamboo": 10,
	"moss_block": 10, "sculk": 11, "sculk_catalyst": 11,
	"honeycomb_block": 14, "honey_block": 14,
	"slime_block": 27,

	// Deepslate
	"deepslate": 72, "cobbled_deepslate": 72, "polished_deepslate": 72,
	"deepslate_bricks": 72, "deepslate_tiles": 72, "chiseled_deepslate": 72,
	"reinforced_deepslate": 72,
	"tuff": 71, "calcite": 15, "dripstone_block": 19,

	// Quartz
	"quartz_block": 15, "quartz_bricks": 15, "quartz_pillar": 15, "chiseled_quartz_block": 15,
	"smooth_quartz": 15,

	// Stairs
	"oak_stairs": 70, "spruce_stairs": 6, "birch_stairs": 19, "jungle_stairs": 70,
	"acacia_stairs": 484, "dark_oak_stairs": 6, "mangrove_stairs": 70, "cherry_stairs": 13,
	"bamboo_stairs": 14, "crimson_stairs": 320, "warped_stairs": 11,
	"stone_stairs": 71, "cobblestone_stairs": 72, "mossy_cobblestone_stairs": 378,
	"stone_brick_stairs": 71, "mossy_stone_brick_stairs": 378,
	"granite_stairs": 25, "polished_granite_stairs": 25,
	"diorite_stairs": 7, "polished_diorite_stairs": 7,
	"andesite_stairs": 8, "polished_andesite_stairs": 8,
	"brick_stairs": 320, "sandstone_stairs": 19, "red_sandstone_stairs": 484,
	"smooth_sandstone_stairs": 19, "smooth_red_sandstone_stairs": 484,
	"prismarine_stairs": 11, "prismarine_brick_stairs": 11, "dark_prismarine_stairs": 288,
	"nether_brick_stairs": 320, "red_nether_brick_stairs": 320,
	"quartz_stairs": 15, "smooth_quartz_stairs": 15,
	"purpur_stairs": 85, "end_stone_brick_stairs": 326,
	"blackstone_stairs": 0, "polished_blackstone_stairs": 0, "polished_blackstone_brick_stairs": 0,
	"deepslate_brick_stairs": 72, "deepslate_tile_stairs": 72, "cobbled_deepslate_stairs": 72,
	"cut_copper_stairs": 484, "exposed_cut_copper_stairs": 378,
	"weathered_cut_copper_stairs": 10, "oxidized_cut_copper_stairs": 11,
	"mud_brick_stairs": 6,

	// Slabs
	"oak_slab": 70, "spruce_slab": 6, "birch_slab": 19, "jungle_slab": 70,
	"acacia_slab": 484, "dark_oak_slab": 6, "mangrove_slab": 70, "cherry_slab": 13,
	"bamboo_slab": 14, "crimson_slab": 320, "warped_slab": 11,
	"stone_slab": 71, "cobblestone_slab": 72, "mossy_cobblestone_slab": 378,
	"stone_brick_slab": 71, "mossy_stone_brick_slab": 378,
	"granite_slab": 25, "polished_granite_slab": 25,
	"diorite_slab": 7, "polished_diorite_slab": 7,
	"andesite_slab": 8, "polished_andesite_slab": 8,
	"brick_slab": 320, "sandstone_slab": 19, "red_sandstone_slab": 484,
	"smooth_sandstone_slab": 19, "smooth_red_sandstone_slab": 484,
	"cut_sandstone_slab": 19, "cut_red_sandstone_slab": 484,
	"prismarine_slab": 11, "prismarine_brick_slab": 11, "dark_prismarine_slab": 288,
	"nether_brick_slab": 320, "red_nether_brick_slab": 320,
	"quartz_slab": 15, "smooth_quartz_slab": 15,
	"purpur_slab": 85, "end_stone_brick_slab": 326,
	"blackstone_slab": 0, "polished_blackstone_slab": 0, "polished_blackstone_brick_slab": 0,
	"deepslate_brick_slab": 72, "deepslate_tile_slab": 72, "cobbled_deepslate_slab": 72,
	"cut_copper_slab": 484, "exposed_cut_copper_slab": 378,
	"weathered_cut_copper_slab": 10, "oxidized_cut_copper_slab": 11,
	"mud_brick_slab": 6, "smooth_stone_slab": 71,

	// Bars
	"iron_bars": 72,
}

// legacyColors maps pre-1.13 numeric block IDs to LDraw colors. Stairs and
// slabs appear here too: legacy schematics carry no orientation data, so
// those blocks render as solid cells in the right color.
var legacyColors = map[int]brick.ColorID{
	1: 71, 2: 10, 3: 6, 4: 72, 5: 70, 6: 10, 7: 0, 8: 73, 9: 73,
	10: 25, 11: 25, 12: 19, 13: 71, 14: 14, 15: 71, 16: 0, 17: 70, 18: 2,
	19: 14, 20: 47, 21: 1, 22: 1, 23: 72, 24: 19, 25: 70, 26: 4, 27: 14,
	28: 70, 29: 27, 30: 15, 31: 2, 32: 6, 33: 70, 34: 19, 35: 15, 37: 14,
	38: 4, 39: 6, 40: 4, 41: 14, 42: 71, 43: 71, 44: 71, 45: 320, 46: 4,
	47: 70, 48: 378, 49: 0, 50: 25, 51: 25, 52: 9, 53: 70, 54: 70, 55: 4,
	56: 41, 57: 41, 58: 70, 59: 326, 60: 6, 61: 72, 62: 72, 63: 70, 64: 70,
	65: 70, 66: 72, 67: 72, 68: 70, 69: 72, 70: 71, 71: 71, 72: 70, 73: 4,
	74: 4, 75: 4, 76: 4, 77: 71, 78: 15, 79: 41, 80: 15, 81: 288, 82: 71,
	83: 27, 84: 70, 85: 70, 86: 25, 87: 320, 88: 6, 89: 326, 90: 85, 91: 25,
	92: 15, 93: 71, 94: 71, 95: 47, 96: 70, 97: 71, 98: 71, 99: 6, 100: 4,
	101: 72, 102: 47, 103: 10, 104: 2, 105: 2, 106: 2, 107: 70, 108: 320,
	109: 71, 110: 379, 111: 10, 112: 320, 113: 320, 114: 320, 115: 4,
	116: 41, 117: 85, 118: 72, 119: 0, 120: 378, 121: 326, 122: 0, 123: 25,
	124: 25, 125: 70, 126: 70, 127: 2, 128: 19, 129: 10, 130: 85, 131: 70,
	132: 7, 133: 10, 134: 70, 135: 191, 136: 70, 137: 25, 138: 41, 139: 72,
	140: 70, 141: 2, 142: 2, 143: 70, 144: 15, 145: 72, 146: 70, 147: 14,
	148: 71, 149: 71, 150: 71, 151: 70, 152: 4, 153: 320, 154: 72, 155: 15,
	156: 15, 157: 70, 158: 72, 159: 15, 160: 47, 161: 10, 162: 70, 163: 484,
	164: 6, 165: 27, 166: 47, 167: 71, 168: 11, 169: 41, 170: 14, 171: 15,
	172: 28, 173: 0, 174: 41, 175: 2, 176: 15, 177: 15, 178: 70, 179: 484,
	180: 484, 181: 484, 182: 484, 183: 70, 184: 191, 185: 70, 186: 6,
	187: 484, 188: 70, 189: 191, 190: 70, 191: 6, 192: 484, 193: 70,
	194: 191, 195: 70, 196: 484, 197: 6, 198: 4, 199: 85, 200: 85, 201: 85,
	202: 85, 203: 85, 204: 85, 205: 85, 206: 326, 207: 2, 208: 6, 209: 0,
	210: 25, 211: 27, 212: 41, 213: 25, 214: 320, 215: 320, 216: 15,
	217: 85, 218: 72, 219: 15, 220: 25, 221: 5, 222: 9, 223: 14, 224: 27,
	225: 13, 226: 8, 227: 7, 228: 11, 229: 85, 230: 1, 231: 6, 232: 2,
	233: 4, 234: 0, 235: 15, 236: 25, 237: 5, 238: 9, 239: 14, 240: 27,
	241: 13, 242: 8, 243: 7, 244: 11, 245: 85, 246: 1, 247: 6, 248: 2,
	249: 4, 250: 0, 251: 15, 252: 15, 255: 72,
}

// woolColors maps legacy wool-style data values (0-15) to LDraw colors.
var woolColors = map[int]brick.ColorID{
	0: 15, 1: 25, 2: 13, 3: 9, 4: 14, 5: 27, 6: 13, 7: 8,
	8: 7, 9: 11, 10: 5, 11: 1, 12: 6, 13: 2, 14: 4, 15: 0,
}
