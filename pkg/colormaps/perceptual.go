package colormaps

// perceptual holds the perceptually uniform and smooth diverging maps as
// evenly spaced stops.
var perceptual = map[string][]string{
	"viridis": {
		"#440154", "#482374", "#404387", "#345e8d", "#29788e", "#20908c",
		"#22a784", "#44be70", "#79d151", "#bdde26", "#fde725",
	},
	"plasma": {
		"#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679", "#e56b5d",
		"#f89441", "#fdc328", "#f0f921",
	},
	"inferno": {
		"#000004", "#280b54", "#65156e", "#9f2a63", "#d44842", "#f57d15",
		"#fac127", "#fcffa4",
	},
	"magma": {
		"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a", "#e55064",
		"#fb8761", "#fec287", "#fcfdbf",
	},
	"cividis": {
		"#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8779",
		"#a69d75", "#c4b56c", "#e4cf5b", "#fee838",
	},
	"coolwarm": {
		"#3b4cc0", "#6282ea", "#8db0fe", "#b8d0f9", "#dddcdc", "#f5c4ad",
		"#f49a7b", "#de604d", "#b40426",
	},
	"twilight": {
		"#e2d9e2", "#9ab0c9", "#6180be", "#5a4ea4", "#2f1436", "#6d2151",
		"#a8434c", "#c98e79", "#e2d9e2",
	},
	"gist_earth": {
		"#000000", "#0f2a77", "#2a6583", "#3d8a7b", "#4e9e5d", "#7ea65c",
		"#aaaf64", "#bfa277", "#d8b9a3", "#fdfbfb",
	},
	"gist_ncar": {
		"#000080", "#0061fe", "#00d4fe", "#00e97c", "#3ef200", "#a6ff19",
		"#ffec00", "#ff8a00", "#fe0000", "#ff00ff", "#fef8fe",
	},
}
