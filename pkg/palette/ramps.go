package palette

// builtinCustom holds the authored ramps, sRGB encoded, in registration order.
var builtinCustom = []struct {
	name  string
	stops []Stop
}{
	{"precipitation", []Stop{
		{0.0, rgba(0.0, 0.0, 0.0, 1.0)},
		{0.05263155698776245, rgba(0.061205919831991196, 0.0037467454094439745, 0.13492080569267273, 1.0)},
		{0.10526317358016968, rgba(0.06187712028622627, 0.01448772568255663, 0.18247292935848236, 1.0)},
		{0.15789473056793213, rgba(0.05637719854712486, 0.03366807848215103, 0.22444787621498108, 1.0)},
		{0.21052634716033936, rgba(0.0475434735417366, 0.058084726333618164, 0.25060197710990906, 1.0)},
		{0.2631579041481018, rgba(0.0371728353202343, 0.09017402678728104, 0.26632359623908997, 1.0)},
		{0.31578946113586426, rgba(0.028809722512960434, 0.12429725378751755, 0.2734186053276062, 1.0)},
		{0.3684210777282715, rgba(0.021840587258338928, 0.16534572839736938, 0.27672967314720154, 1.0)},
		{0.42105263471603394, rgba(0.016847146674990654, 0.20782506465911865, 0.2770037353038788, 1.0)},
		{0.4736841917037964, rgba(0.012492450885474682, 0.25902366638183594, 0.2732461988925934, 1.0)},
		{0.5263158082962036, rgba(0.009742427617311478, 0.3121352791786194, 0.2637326419353485, 1.0)},
		{0.5789473652839661, rgba(0.010268782265484333, 0.3752182126045227, 0.24440304934978485, 1.0)},
		{0.6315789222717285, rgba(0.018240107223391533, 0.43827247619628906, 0.21680444478988647, 1.0)},
		{0.6842105388641357, rgba(0.04304962232708931, 0.5088575482368469, 0.17744702100753784, 1.0)},
		{0.7368420958518982, rgba(0.09070251882076263, 0.5740482211112976, 0.13471432030200958, 1.0)},
		{0.7894737124443054, rgba(0.18001516163349152, 0.639945924282074, 0.08708430826663971, 1.0)},
		{0.8421052694320679, rgba(0.3082120418548584, 0.6933635473251343, 0.04732321947813034, 1.0)},
		{0.8947368264198303, rgba(0.5017335414886475, 0.7396805882453918, 0.016790039837360382, 1.0)},
		{0.9473684430122375, rgba(0.7287082672119141, 0.7735996842384338, 0.00576141057536006, 1.0)},
		{1.0, rgba(0.9852057695388794, 0.8050958514213562, 0.014059592969715595, 1.0)},
	}},
	{"temperature", []Stop{
		{0.0, rgba(0.0, 0.0, 0.0, 1.0)},
		{0.05263155698776245, rgba(0.003496936522424221, 0.0, 0.0, 1.0)},
		{0.10526317358016968, rgba(0.01606770046055317, 0.0, 0.0, 1.0)},
		{0.15789473056793213, rgba(0.041451890021562576, 0.0, 0.0, 1.0)},
		{0.21052634716033936, rgba(0.07698733359575272, 0.0, 0.0, 1.0)},
		{0.2631579041481018, rgba(0.12893681228160858, 0.0, 0.0, 1.0)},
		{0.31578946113586426, rgba(0.1904628723859787, 0.0, 0.0, 1.0)},
		{0.3684210777282715, rgba(0.2715774178504944, 0.0, 0.0, 1.0)},
		{0.42105263471603394, rgba(0.36112427711486816, 0.0, 0.0, 1.0)},
		{0.4736841917037964, rgba(0.47330400347709656, 0.0, 0.0, 1.0)},
		{0.5263158082962036, rgba(0.5924380421638489, 0.0014331345446407795, 0.0, 1.0)},
		{0.5789473652839661, rgba(0.7372047901153564, 0.017936432734131813, 0.0, 1.0)},
		{0.6315789222717285, rgba(0.8872158527374268, 0.05284162610769272, 0.0, 1.0)},
		{0.6842105388641357, rgba(1.0, 0.11392093449831009, 0.0, 1.0)},
		{0.7368420958518982, rgba(1.0, 0.1939721703529358, 0.0, 1.0)},
		{0.7894737124443054, rgba(1.0, 0.3066347539424896, 0.019917838275432587, 1.0)},
		{0.8421052694320679, rgba(1.0, 0.43681275844573975, 0.11392093449831009, 1.0)},
		{0.8947368264198303, rgba(1.0, 0.6054843068122864, 0.3157627582550049, 1.0)},
		{0.9473684430122375, rgba(1.0, 0.7893137335777283, 0.6054843068122864, 1.0)},
		{1.0, rgba(1.0, 1.0, 1.0, 1.0)},
	}},
	{"precip_dif", []Stop{
		{0.0, rgba(1.0, 1.0, 1.0, 1.0)},
		{0.055555541068315506, rgba(1.0, 0.5795466303825378, 0.28012436628341675, 1.0)},
		{0.1111111119389534, rgba(1.0, 0.28012436628341675, 0.00969632901251316, 1.0)},
		{0.1666666567325592, rgba(1.0, 0.08919350802898407, 0.0, 1.0)},
		{0.2222222238779068, rgba(0.6730490922927856, 0.008373118005692959, 0.0, 1.0)},
		{0.2777777910232544, rgba(0.4071786105632782, 0.0, 0.0, 1.0)},
		{0.3333333432674408, rgba(0.21763764321804047, 0.0, 0.0, 1.0)},
		{0.3888888955116272, rgba(0.08690125495195389, 0.0, 0.0, 1.0)},
		{0.4444444477558136, rgba(0.018912984058260918, 0.0, 0.0, 1.0)},
		{0.5, rgba(0.0, 0.0, 0.0, 1.0)},
		{0.5555555820465088, rgba(0.000493000028654933, 0.025371000170707703, 0.14799800515174866, 1.0)},
		{0.6111111640930176, rgba(0.000493000028654933, 0.07173699885606766, 0.31137698888778687, 1.0)},
		{0.6666667461395264, rgba(0.007108999881893396, 0.14263400435447693, 0.436381995677948, 1.0)},
		{0.7222223281860352, rgba(0.03423000127077103, 0.2468000054359436, 0.5376899838447571, 1.0)},
		{0.777777910232544, rgba(0.09710799902677536, 0.3649109899997711, 0.6301739811897278, 1.0)},
		{0.8333334922790527, rgba(0.2279060035943985, 0.5038710236549377, 0.7154939770698547, 1.0)},
		{0.8888890743255615, rgba(0.41693100333213806, 0.6365299820899963, 0.7943779826164246, 1.0)},
		{0.9444446563720703, rgba(0.6109790205955505, 0.74372398853302, 0.8827369809150696, 1.0)},
		{1.0, rgba(0.9322770237922668, 0.965815007686615, 1.0, 1.0)},
	}},
	{"temp_dif", []Stop{
		{0.0, rgba(0.9322770237922668, 0.965815007686615, 1.0, 1.0)},
		{0.05555534362792969, rgba(0.6109790205955505, 0.74372398853302, 0.8827369809150696, 1.0)},
		{0.11111092567443848, rgba(0.41693100333213806, 0.6365299820899963, 0.7943779826164246, 1.0)},
		{0.16666650772094727, rgba(0.2279060035943985, 0.5038710236549377, 0.7154939770698547, 1.0)},
		{0.22222208976745605, rgba(0.09710799902677536, 0.3649109899997711, 0.6301739811897278, 1.0)},
		{0.27777767181396484, rgba(0.03423000127077103, 0.2468000054359436, 0.5376899838447571, 1.0)},
		{0.33333325386047363, rgba(0.007108999881893396, 0.14263400435447693, 0.436381995677948, 1.0)},
		{0.3888888359069824, rgba(0.000493000028654933, 0.07173699885606766, 0.31137698888778687, 1.0)},
		{0.4444444179534912, rgba(0.000493000028654933, 0.025371000170707703, 0.14799800515174866, 1.0)},
		{0.5, rgba(0.0, 0.0, 0.0, 1.0)},
		{0.5555555820465088, rgba(0.018912984058260918, 0.0, 0.0, 1.0)},
		{0.6111111044883728, rgba(0.08690125495195389, 0.0, 0.0, 1.0)},
		{0.6666666269302368, rgba(0.21763764321804047, 0.0, 0.0, 1.0)},
		{0.7222222089767456, rgba(0.4071786105632782, 0.0, 0.0, 1.0)},
		{0.7777777910232544, rgba(0.6730490922927856, 0.008373118005692959, 0.0, 1.0)},
		{0.8333333730697632, rgba(1.0, 0.08919350802898407, 0.0, 1.0)},
		{0.8888888955116272, rgba(1.0, 0.28012436628341675, 0.00969632901251316, 1.0)},
		{0.944444477558136, rgba(1.0, 0.5795466303825378, 0.28012436628341675, 1.0)},
		{1.0, rgba(1.0, 1.0, 1.0, 1.0)},
	}},
	{"jw_precip", []Stop{
		{0.0, rgba(0.05, 0.05, 0.2, 1.0)},
		{0.25, rgba(0.2, 0.4, 0.8, 1.0)},
		{0.5, rgba(0.4, 0.8, 0.4, 1.0)},
		{0.75, rgba(0.9, 0.9, 0.2, 1.0)},
		{1.0, rgba(0.9, 0.2, 0.1, 1.0)},
	}},
	{"jw_temp", []Stop{
		{0.0, rgba(0.1, 0.1, 0.5, 1.0)},
		{0.2, rgba(0.3, 0.3, 0.9, 1.0)},
		{0.4, rgba(0.9, 0.9, 0.9, 1.0)},
		{0.6, rgba(0.9, 0.7, 0.3, 1.0)},
		{0.8, rgba(0.9, 0.3, 0.1, 1.0)},
		{1.0, rgba(0.6, 0.1, 0.1, 1.0)},
	}},
	{"ocean_depth", []Stop{
		{0.0, rgba(0.0, 0.1, 0.2, 1.0)},
		{0.3, rgba(0.0, 0.3, 0.5, 1.0)},
		{0.6, rgba(0.2, 0.6, 0.8, 1.0)},
		{0.8, rgba(0.6, 0.9, 0.9, 1.0)},
		{1.0, rgba(0.9, 0.95, 1.0, 1.0)},
	}},
	{"earth_tones", []Stop{
		{0.0, rgba(0.2, 0.1, 0.0, 1.0)},
		{0.25, rgba(0.5, 0.3, 0.1, 1.0)},
		{0.5, rgba(0.7, 0.6, 0.3, 1.0)},
		{0.75, rgba(0.4, 0.6, 0.2, 1.0)},
		{1.0, rgba(0.2, 0.4, 0.1, 1.0)},
	}},
	{"fire", []Stop{
		{0.0, rgba(0.0, 0.0, 0.0, 1.0)},
		{0.25, rgba(0.3, 0.0, 0.1, 1.0)},
		{0.5, rgba(0.8, 0.2, 0.0, 1.0)},
		{0.75, rgba(1.0, 0.6, 0.1, 1.0)},
		{1.0, rgba(1.0, 1.0, 0.8, 1.0)},
	}},
}
