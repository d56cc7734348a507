// SPDX-License-Identifier: GPL-2.0-or-later

package spray

// Base game skincolors, from info.c.
var baseGame = [...]Spray{
	{ID: "SKINCOLOR_NONE", Name: "Default", Ramp: [16]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	{ID: "SKINCOLOR_WHITE", Name: "White", Ramp: [16]uint8{0, 0, 0, 0, 1, 2, 5, 8, 9, 11, 14, 17, 20, 22, 25, 28}},
	{ID: "SKINCOLOR_SILVER", Name: "Silver", Ramp: [16]uint8{0, 1, 2, 3, 5, 7, 9, 12, 13, 15, 18, 20, 23, 25, 27, 30}},
	{ID: "SKINCOLOR_GREY", Name: "Grey", Ramp: [16]uint8{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31}},
	{ID: "SKINCOLOR_NICKEL", Name: "Nickel", Ramp: [16]uint8{3, 5, 8, 11, 15, 17, 19, 21, 23, 24, 25, 26, 27, 29, 30, 31}},
	{ID: "SKINCOLOR_BLACK", Name: "Black", Ramp: [16]uint8{4, 7, 11, 15, 20, 22, 24, 27, 28, 28, 28, 29, 29, 30, 30, 31}},
	{ID: "SKINCOLOR_SKUNK", Name: "Skunk", Ramp: [16]uint8{0, 1, 2, 3, 4, 10, 16, 21, 23, 24, 25, 26, 27, 28, 29, 31}},
	{ID: "SKINCOLOR_FAIRY", Name: "Fairy", Ramp: [16]uint8{0, 0, 252, 252, 200, 201, 211, 14, 16, 18, 20, 22, 24, 26, 28, 31}},
	{ID: "SKINCOLOR_POPCORN", Name: "Popcorn", Ramp: [16]uint8{0, 80, 80, 81, 82, 218, 240, 11, 13, 16, 18, 21, 23, 26, 28, 31}},
	{ID: "SKINCOLOR_ARTICHOKE", Name: "Artichoke", Ramp: [16]uint8{80, 88, 89, 98, 99, 91, 12, 14, 16, 18, 20, 22, 24, 26, 28, 31}},
	{ID: "SKINCOLOR_PIGEON", Name: "Pigeon", Ramp: [16]uint8{0, 128, 129, 130, 146, 170, 14, 15, 17, 19, 21, 23, 25, 27, 29, 31}},
	{ID: "SKINCOLOR_SEPIA", Name: "Sepia", Ramp: [16]uint8{0, 1, 3, 5, 7, 9, 241, 242, 243, 245, 247, 249, 236, 237, 238, 239}},
	{ID: "SKINCOLOR_BEIGE", Name: "Beige", Ramp: [16]uint8{0, 208, 216, 217, 240, 241, 242, 243, 245, 247, 249, 250, 251, 237, 238, 239}},
	{ID: "SKINCOLOR_CARAMEL", Name: "Caramel", Ramp: [16]uint8{208, 48, 216, 217, 218, 220, 221, 223, 224, 226, 228, 230, 232, 234, 236, 239}},
	{ID: "SKINCOLOR_PEACH", Name: "Peach", Ramp: [16]uint8{0, 208, 48, 216, 218, 221, 212, 213, 214, 215, 206, 207, 197, 198, 199, 254}},
	{ID: "SKINCOLOR_BROWN", Name: "Brown", Ramp: [16]uint8{216, 217, 219, 221, 224, 225, 227, 229, 230, 232, 234, 235, 237, 239, 29, 30}},
	{ID: "SKINCOLOR_LEATHER", Name: "Leather", Ramp: [16]uint8{218, 221, 224, 227, 229, 231, 233, 235, 237, 239, 28, 28, 29, 29, 30, 31}},
	{ID: "SKINCOLOR_PINK", Name: "Pink", Ramp: [16]uint8{0, 208, 208, 209, 209, 210, 211, 211, 212, 213, 214, 215, 41, 43, 45, 46}},
	{ID: "SKINCOLOR_ROSE", Name: "Rose", Ramp: [16]uint8{209, 210, 211, 211, 212, 213, 214, 215, 41, 42, 43, 44, 45, 71, 46, 47}},
	{ID: "SKINCOLOR_CINNAMON", Name: "Cinnamon", Ramp: [16]uint8{216, 221, 224, 226, 228, 60, 61, 43, 44, 45, 71, 46, 47, 29, 30, 31}},
	{ID: "SKINCOLOR_RUBY", Name: "Ruby", Ramp: [16]uint8{0, 208, 209, 210, 211, 213, 39, 40, 41, 43, 186, 186, 169, 169, 253, 254}},
	{ID: "SKINCOLOR_RASPBERRY", Name: "Raspberry", Ramp: [16]uint8{0, 208, 209, 210, 32, 33, 34, 35, 37, 39, 41, 43, 44, 45, 46, 47}},
	{ID: "SKINCOLOR_RED", Name: "Red", Ramp: [16]uint8{209, 210, 32, 34, 36, 38, 39, 40, 41, 42, 43, 44, 45, 71, 46, 47}},
	{ID: "SKINCOLOR_CRIMSON", Name: "Crimson", Ramp: [16]uint8{210, 33, 35, 38, 40, 42, 43, 45, 71, 71, 46, 46, 47, 47, 30, 31}},
	{ID: "SKINCOLOR_MAROON", Name: "Maroon", Ramp: [16]uint8{32, 33, 35, 37, 39, 41, 43, 237, 26, 26, 27, 27, 28, 29, 30, 31}},
	{ID: "SKINCOLOR_LEMONADE", Name: "Lemonade", Ramp: [16]uint8{0, 80, 81, 82, 83, 216, 210, 211, 212, 213, 214, 215, 43, 44, 71, 47}},
	{ID: "SKINCOLOR_SCARLET", Name: "Scarlet", Ramp: [16]uint8{48, 49, 50, 51, 53, 34, 36, 38, 184, 185, 168, 168, 169, 169, 254, 31}},
	{ID: "SKINCOLOR_KETCHUP", Name: "Ketchup", Ramp: [16]uint8{72, 73, 64, 51, 52, 54, 34, 36, 38, 40, 42, 43, 44, 71, 46, 47}},
	{ID: "SKINCOLOR_DAWN", Name: "Dawn", Ramp: [16]uint8{0, 208, 216, 209, 210, 211, 212, 57, 58, 59, 60, 61, 63, 71, 47, 31}},
	{ID: "SKINCOLOR_SUNSLAM", Name: "Sunslam", Ramp: [16]uint8{82, 72, 73, 64, 51, 53, 55, 213, 214, 195, 195, 173, 174, 175, 253, 254}},
	{ID: "SKINCOLOR_CREAMSICLE", Name: "Creamsicle", Ramp: [16]uint8{0, 0, 208, 208, 48, 49, 50, 52, 53, 54, 56, 57, 58, 60, 61, 63}},
	{ID: "SKINCOLOR_ORANGE", Name: "Orange", Ramp: [16]uint8{208, 48, 49, 50, 51, 52, 53, 54, 55, 57, 59, 60, 62, 44, 71, 47}},
	{ID: "SKINCOLOR_ROSEWOOD", Name: "Rosewood", Ramp: [16]uint8{50, 52, 55, 56, 58, 59, 60, 61, 62, 63, 44, 45, 71, 46, 47, 30}},
	{ID: "SKINCOLOR_TANGERINE", Name: "Tangerine", Ramp: [16]uint8{80, 81, 82, 83, 64, 51, 52, 54, 55, 57, 58, 60, 61, 63, 71, 47}},
	{ID: "SKINCOLOR_TAN", Name: "Tan", Ramp: [16]uint8{0, 80, 81, 82, 83, 84, 85, 86, 87, 245, 246, 248, 249, 251, 237, 239}},
	{ID: "SKINCOLOR_CREAM", Name: "Cream", Ramp: [16]uint8{0, 80, 80, 81, 81, 49, 51, 222, 224, 227, 230, 233, 236, 239, 29, 31}},
	{ID: "SKINCOLOR_GOLD", Name: "Gold", Ramp: [16]uint8{0, 80, 81, 83, 64, 65, 66, 67, 68, 215, 69, 70, 44, 71, 46, 47}},
	{ID: "SKINCOLOR_ROYAL", Name: "Royal", Ramp: [16]uint8{80, 81, 83, 64, 65, 223, 229, 196, 196, 197, 197, 198, 199, 29, 30, 31}},
	{ID: "SKINCOLOR_BRONZE", Name: "Bronze", Ramp: [16]uint8{83, 64, 65, 66, 67, 215, 69, 70, 44, 44, 45, 71, 46, 47, 29, 31}},
	{ID: "SKINCOLOR_COPPER", Name: "Copper", Ramp: [16]uint8{0, 82, 64, 65, 67, 68, 70, 237, 239, 28, 28, 29, 29, 30, 30, 31}},
	{ID: "SKINCOLOR_YELLOW", Name: "Yellow", Ramp: [16]uint8{0, 80, 81, 82, 83, 73, 84, 74, 64, 65, 66, 67, 68, 69, 70, 71}},
	{ID: "SKINCOLOR_MUSTARD", Name: "Mustard", Ramp: [16]uint8{80, 81, 82, 83, 64, 65, 65, 76, 76, 77, 77, 78, 79, 237, 239, 29}},
	{ID: "SKINCOLOR_BANANA", Name: "Banana", Ramp: [16]uint8{80, 81, 83, 72, 73, 74, 75, 76, 77, 78, 79, 236, 237, 238, 239, 30}},
	{ID: "SKINCOLOR_OLIVE", Name: "Olive", Ramp: [16]uint8{80, 82, 73, 74, 75, 76, 77, 78, 79, 236, 237, 238, 239, 28, 29, 31}},
	{ID: "SKINCOLOR_CROCODILE", Name: "Crocodile", Ramp: [16]uint8{0, 80, 81, 88, 88, 188, 189, 76, 76, 77, 78, 79, 236, 237, 238, 239}},
	{ID: "SKINCOLOR_PERIDOT", Name: "Peridot", Ramp: [16]uint8{0, 80, 81, 88, 188, 189, 190, 191, 94, 94, 95, 95, 109, 110, 111, 31}},
	{ID: "SKINCOLOR_VOMIT", Name: "Vomit", Ramp: [16]uint8{0, 208, 216, 209, 218, 51, 65, 76, 191, 191, 126, 143, 138, 175, 169, 254}},
	{ID: "SKINCOLOR_GARDEN", Name: "Garden", Ramp: [16]uint8{81, 82, 83, 73, 64, 65, 66, 92, 92, 93, 93, 94, 95, 109, 110, 111}},
	{ID: "SKINCOLOR_LIME", Name: "Lime", Ramp: [16]uint8{0, 80, 81, 88, 188, 189, 114, 114, 115, 115, 116, 116, 117, 118, 119, 111}},
	{ID: "SKINCOLOR_HANDHELD", Name: "Handheld", Ramp: [16]uint8{83, 72, 73, 74, 75, 76, 102, 104, 105, 106, 107, 108, 109, 110, 111, 31}},
	{ID: "SKINCOLOR_TEA", Name: "Tea", Ramp: [16]uint8{0, 80, 80, 81, 88, 89, 90, 91, 92, 93, 94, 95, 109, 110, 111, 31}},
	{ID: "SKINCOLOR_PISTACHIO", Name: "Pistachio", Ramp: [16]uint8{0, 80, 88, 88, 89, 90, 91, 102, 103, 104, 105, 106, 107, 108, 109, 110}},
	{ID: "SKINCOLOR_MOSS", Name: "Moss", Ramp: [16]uint8{88, 89, 90, 91, 91, 92, 93, 94, 107, 107, 108, 108, 109, 109, 110, 111}},
	{ID: "SKINCOLOR_CAMOUFLAGE", Name: "Camouflage", Ramp: [16]uint8{208, 84, 85, 240, 241, 243, 245, 94, 107, 108, 108, 109, 109, 110, 110, 111}},
	{ID: "SKINCOLOR_MINT", Name: "Mint", Ramp: [16]uint8{0, 88, 88, 89, 89, 100, 101, 102, 125, 126, 143, 143, 138, 175, 169, 254}},
	{ID: "SKINCOLOR_GREEN", Name: "Green", Ramp: [16]uint8{96, 97, 98, 99, 100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111}},
	{ID: "SKINCOLOR_PINETREE", Name: "Pinetree", Ramp: [16]uint8{97, 99, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 30, 30, 31}},
	{ID: "SKINCOLOR_TURTLE", Name: "Turtle", Ramp: [16]uint8{96, 112, 112, 113, 113, 114, 114, 115, 115, 116, 116, 117, 117, 118, 119, 111}},
	{ID: "SKINCOLOR_SWAMP", Name: "Swamp", Ramp: [16]uint8{96, 112, 113, 114, 115, 116, 117, 118, 119, 119, 29, 29, 30, 30, 31, 31}},
	{ID: "SKINCOLOR_DREAM", Name: "Dream", Ramp: [16]uint8{0, 0, 208, 208, 48, 89, 98, 100, 148, 148, 172, 172, 173, 173, 174, 175}},
	{ID: "SKINCOLOR_PLAGUE", Name: "Plague", Ramp: [16]uint8{80, 88, 96, 112, 113, 124, 142, 149, 149, 173, 174, 175, 169, 253, 254, 31}},
	{ID: "SKINCOLOR_EMERALD", Name: "Emerald", Ramp: [16]uint8{0, 120, 121, 112, 113, 114, 115, 125, 125, 126, 126, 127, 138, 175, 253, 254}},
	{ID: "SKINCOLOR_ALGAE", Name: "Algae", Ramp: [16]uint8{128, 129, 130, 131, 132, 133, 134, 115, 115, 116, 116, 117, 118, 119, 110, 111}},
	{ID: "SKINCOLOR_AQUAMARINE", Name: "Aquamarine", Ramp: [16]uint8{0, 128, 120, 121, 122, 123, 124, 125, 126, 126, 127, 127, 118, 118, 119, 111}},
	{ID: "SKINCOLOR_TURQUOISE", Name: "Turquoise", Ramp: [16]uint8{128, 120, 121, 122, 123, 141, 141, 142, 142, 143, 143, 138, 138, 139, 139, 31}},
	{ID: "SKINCOLOR_TEAL", Name: "Teal", Ramp: [16]uint8{0, 120, 120, 121, 140, 141, 142, 143, 143, 138, 138, 139, 139, 254, 254, 31}},
	{ID: "SKINCOLOR_ROBIN", Name: "Robin", Ramp: [16]uint8{0, 80, 81, 82, 83, 88, 121, 140, 133, 133, 134, 135, 136, 137, 138, 139}},
	{ID: "SKINCOLOR_CYAN", Name: "Cyan", Ramp: [16]uint8{0, 0, 128, 128, 255, 131, 132, 134, 142, 142, 143, 127, 118, 119, 110, 111}},
	{ID: "SKINCOLOR_JAWZ", Name: "Jawz", Ramp: [16]uint8{0, 0, 128, 128, 129, 146, 133, 134, 135, 149, 149, 173, 173, 174, 175, 31}},
	{ID: "SKINCOLOR_CERULEAN", Name: "Cerulean", Ramp: [16]uint8{0, 128, 129, 130, 131, 132, 133, 135, 136, 136, 137, 137, 138, 138, 139, 31}},
	{ID: "SKINCOLOR_NAVY", Name: "Navy", Ramp: [16]uint8{128, 129, 130, 132, 134, 135, 136, 137, 137, 138, 138, 139, 139, 29, 30, 31}},
	{ID: "SKINCOLOR_PLATINUM", Name: "Platinum", Ramp: [16]uint8{0, 0, 0, 144, 144, 145, 9, 11, 14, 142, 136, 137, 138, 138, 139, 31}},
	{ID: "SKINCOLOR_SLATE", Name: "Slate", Ramp: [16]uint8{0, 0, 144, 144, 144, 145, 145, 145, 170, 170, 171, 171, 172, 173, 174, 175}},
	{ID: "SKINCOLOR_STEEL", Name: "Steel", Ramp: [16]uint8{0, 144, 144, 145, 145, 170, 170, 171, 171, 172, 172, 173, 173, 174, 175, 31}},
	{ID: "SKINCOLOR_THUNDER", Name: "Thunder", Ramp: [16]uint8{80, 81, 82, 83, 64, 65, 11, 171, 172, 173, 173, 157, 158, 159, 254, 31}},
	{ID: "SKINCOLOR_NOVA", Name: "Nova", Ramp: [16]uint8{0, 83, 49, 50, 51, 32, 192, 148, 148, 172, 173, 174, 175, 29, 30, 31}},
	{ID: "SKINCOLOR_RUST", Name: "Rust", Ramp: [16]uint8{208, 48, 216, 217, 240, 241, 242, 171, 172, 173, 24, 25, 26, 28, 29, 31}},
	{ID: "SKINCOLOR_WRISTWATCH", Name: "Wristwatch", Ramp: [16]uint8{48, 218, 221, 224, 227, 231, 196, 173, 173, 174, 159, 159, 253, 253, 254, 31}},
	{ID: "SKINCOLOR_JET", Name: "Jet", Ramp: [16]uint8{145, 146, 147, 148, 149, 173, 173, 174, 175, 175, 28, 28, 29, 29, 30, 31}},
	{ID: "SKINCOLOR_SAPPHIRE", Name: "Sapphire", Ramp: [16]uint8{0, 128, 129, 131, 133, 135, 149, 150, 152, 154, 156, 158, 159, 253, 254, 31}},
	{ID: "SKINCOLOR_ULTRAMARINE", Name: "Ultramarine", Ramp: [16]uint8{0, 0, 120, 120, 121, 133, 135, 149, 149, 166, 166, 167, 168, 169, 254, 31}},
	{ID: "SKINCOLOR_PERIWINKLE", Name: "Periwinkle", Ramp: [16]uint8{0, 0, 144, 144, 145, 146, 147, 149, 150, 152, 154, 155, 157, 159, 253, 254}},
	{ID: "SKINCOLOR_BLUE", Name: "Blue", Ramp: [16]uint8{144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 155, 156, 158, 253, 254, 31}},
	{ID: "SKINCOLOR_MIDNIGHT", Name: "Midnight", Ramp: [16]uint8{146, 148, 149, 150, 152, 153, 155, 157, 159, 253, 253, 254, 254, 31, 31, 31}},
	{ID: "SKINCOLOR_BLUEBERRY", Name: "Blueberry", Ramp: [16]uint8{0, 144, 145, 146, 147, 171, 172, 166, 166, 167, 167, 168, 168, 175, 169, 253}},
	{ID: "SKINCOLOR_THISTLE", Name: "Thistle", Ramp: [16]uint8{0, 0, 0, 252, 252, 160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 254}},
	{ID: "SKINCOLOR_PURPLE", Name: "Purple", Ramp: [16]uint8{0, 252, 160, 161, 162, 163, 164, 165, 166, 167, 168, 168, 169, 169, 253, 254}},
	{ID: "SKINCOLOR_PASTEL", Name: "Pastel", Ramp: [16]uint8{0, 128, 128, 129, 129, 146, 170, 162, 163, 164, 165, 166, 167, 168, 169, 254}},
	{ID: "SKINCOLOR_MOONSET", Name: "Moonset", Ramp: [16]uint8{0, 144, 145, 146, 170, 162, 163, 184, 184, 207, 207, 44, 45, 46, 47, 31}},
	{ID: "SKINCOLOR_DUSK", Name: "Dusk", Ramp: [16]uint8{252, 200, 201, 192, 193, 194, 172, 172, 173, 173, 174, 174, 175, 169, 253, 254}},
	{ID: "SKINCOLOR_VIOLET", Name: "Violet", Ramp: [16]uint8{176, 177, 178, 179, 180, 181, 182, 183, 184, 165, 165, 166, 167, 168, 169, 254}},
	{ID: "SKINCOLOR_MAGENTA", Name: "Magenta", Ramp: [16]uint8{252, 200, 177, 177, 178, 179, 180, 181, 182, 183, 183, 184, 185, 186, 187, 31}},
	{ID: "SKINCOLOR_FUCHSIA", Name: "Fuchsia", Ramp: [16]uint8{208, 209, 209, 32, 33, 182, 183, 184, 185, 185, 186, 186, 187, 253, 254, 31}},
	{ID: "SKINCOLOR_TOXIC", Name: "Toxic", Ramp: [16]uint8{0, 0, 88, 88, 89, 6, 8, 10, 193, 194, 195, 184, 185, 186, 187, 31}},
	{ID: "SKINCOLOR_MAUVE", Name: "Mauve", Ramp: [16]uint8{80, 81, 82, 83, 64, 50, 201, 192, 193, 194, 195, 173, 174, 175, 253, 254}},
	{ID: "SKINCOLOR_LAVENDER", Name: "Lavender", Ramp: [16]uint8{252, 177, 179, 192, 193, 194, 195, 196, 196, 197, 197, 198, 198, 199, 30, 31}},
	{ID: "SKINCOLOR_BYZANTIUM", Name: "Byzantium", Ramp: [16]uint8{145, 192, 193, 194, 195, 196, 197, 198, 199, 199, 29, 29, 30, 30, 31, 31}},
	{ID: "SKINCOLOR_POMEGRANATE", Name: "Pomegranate", Ramp: [16]uint8{208, 209, 210, 211, 212, 213, 214, 195, 195, 196, 196, 197, 198, 199, 29, 30}},
	{ID: "SKINCOLOR_LILAC", Name: "Lilac", Ramp: [16]uint8{0, 0, 0, 252, 252, 176, 200, 201, 179, 192, 193, 194, 195, 196, 197, 198}},
	{ID: "SKINCOLOR_BLOSSOM", Name: "Blossom", Ramp: [16]uint8{0, 252, 252, 176, 200, 177, 201, 202, 202, 34, 36, 38, 40, 42, 45, 46}},
	{ID: "SKINCOLOR_TAFFY", Name: "Taffy", Ramp: [16]uint8{0, 252, 252, 200, 200, 201, 202, 203, 204, 204, 205, 206, 207, 43, 45, 47}},
}
