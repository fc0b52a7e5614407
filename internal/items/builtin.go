package items

// builtin is the stock set of non-kitten item descriptions.
var builtin = []string{
	"A signed photograph of a lighthouse keeper, waving.",
	"A half-eaten sandwich. It is egg salad. Robot is relieved it is not kitten.",
	"An empty spool of thread.",
	"A rubber duck with a knowing expression.",
	"A tin of sardines, unopened and smug.",
	"It is a small pile of sand. Robot is unsure how it got here.",
	"A paperback novel with the last chapter torn out.",
	"A bicycle bell that rings in B flat.",
	"A very tired houseplant.",
	"Somebody's left sock. The other one is elsewhere.",
	"A broken metronome, ticking irregularly.",
	"It's a brick. Just a brick.",
	"An origami crane folded from a parking ticket.",
	"A jar of pickled onions labelled \"DO NOT\".",
	"A floppy disk containing a single spreadsheet.",
	"A scale model of the Eiffel Tower, slightly bent.",
	"A lost contact lens, watching robot.",
	"A cactus wearing a tiny hat.",
	"A stack of coupons, all of them expired.",
	"The remains of a snowman. Mostly a carrot now.",
	"A fortune cookie. The fortune reads \"You will find kitten. Eventually.\"",
	"A glass eye. It does not blink.",
	"A spare tire for a unicycle.",
	"A puddle shaped like the state of Ohio.",
	"A clockwork mouse. Close, robot, but no.",
	"It's a teapot with a tiny crack in the lid.",
	"A jar of buttons, none of which match.",
	"An unusually philosophical lamp.",
	"A cardboard box. Kitten would love it, but it is not kitten.",
	"A dusty trophy for \"Most Improved Toaster\".",
	"A pair of sunglasses on nobody.",
	"A seashell that plays elevator music when held to the ear.",
	"An abacus with one bead missing.",
	"A wrinkled map of a town that does not exist.",
	"A pocket watch stopped at 4:17.",
	"A bottle of invisible ink. Probably.",
	"A tiny flag of a country robot has never heard of.",
	"A melted crayon, formerly \"burnt sienna\".",
	"It's a harmonica missing the low notes.",
	"A sack of flour with a face drawn on it.",
	"A stuffed owl. It has seen things.",
	"A lump of coal left over from a disappointing holiday.",
	"The instruction manual for a different game.",
	"A copy of yesterday's newspaper.",
	"A paper airplane that refuses to fly.",
	"A set of wind chimes, perfectly still.",
	"A traffic cone, far from any traffic.",
	"A suspicious-looking banana.",
	"An envelope addressed to \"Occupant\".",
	"A roll of tape with no visible end.",
	"A garden gnome on holiday.",
	"A thumb drive labelled \"BACKUP (OLD) (2) FINAL\".",
	"A snow globe containing a tiny robot looking for a tiny kitten.",
	"A bowling pin that survived.",
	"A bag of marbles, mostly lost.",
	"A xylophone with only the note C.",
	"A carton of milk well past its date.",
	"It's a mitten. Kitten rhymes with it, but that is all.",
	"A chess knight that only moves diagonally.",
	"A rubber band ball the size of a grapefruit.",
	"A ceramic frog holding a welcome sign.",
	"A pile of leaves, raked with great care.",
	"A wind-up dinosaur with a sore leg.",
	"A spoon, slightly bent by somebody's mind.",
	"A can of paint labelled \"Eggshell (Not Eggs)\".",
	"A single ice skate.",
	"An umbrella that opens inside out on purpose.",
	"A birdhouse with a \"No Vacancy\" sign.",
	"A stapler that has seen better days.",
	"A birthday candle shaped like the number 7.",
	"A kazoo. Robot resists the urge.",
	"A lone puzzle piece, mostly sky.",
	"A deflated balloon that once said \"Congratulations\".",
	"A postcard from the bottom of the sea.",
	"An hourglass running sideways.",
	"A vintage radio tuned between stations.",
	"A pine cone with excellent posture.",
	"A small rock that looks like a smaller rock.",
	"A jar of honey with a bee still working inside.",
	"A tangled pair of earbuds.",
	"A library book, forty years overdue.",
	"A tape measure that only measures in feet of actual feet.",
	"A plate of cookies. The crumbs suggest somebody was here.",
	"A sock puppet with no opinions.",
	"A slightly radioactive banana. Robot moves on politely.",
	"A cup of cold coffee, abandoned mid-thought.",
	"A weather vane pointing down.",
	"A toy boat in no water.",
	"A cuckoo clock with a shy cuckoo.",
	"It is a dictionary open to the word \"kitten\". Close, but no.",
	"A pair of reading glasses, reading nothing.",
	"A box of crackers shaped like animals. None of them are kitten.",
	"A candle that smells like \"Linen\".",
	"A lonely chopstick.",
	"A doormat that says \"Go Away\".",
	"A dented trumpet.",
	"A box of assorted screws, none the right size.",
	"A jar of fireflies, glowing politely.",
	"A wooden spoon with a long history.",
	"A piece of chalk, worn down to a nub.",
	"A model rocket that has never left the ground.",
	"A bag of frozen peas, thawing.",
	"A lawn flamingo far from any lawn.",
	"A set of keys to an unknown door.",
	"A rubber chicken. Robot refuses to laugh.",
	"An antique typewriter missing the letter K.",
	"A napkin with a telephone number on it.",
	"A loaf of bread, shaped like a cat. Robot checks twice. Not kitten.",
	"A mysterious lever. Robot decides not to pull it.",
	"An old photograph of robot's grandfather, a toaster.",
	"A bucket with a hole in it.",
	"A kite stuck on nothing at all.",
	"A jar labelled \"Moon Dust\". It is flour.",
	"A music box playing a song robot almost remembers.",
	"A bottle cap from a discontinued soda.",
	"A velvet painting of dogs playing poker.",
	"A thimble of considerable importance.",
	"A compass that always points to the nearest sandwich.",
	"A tin soldier on permanent leave.",
	"A magnifying glass, useful for finding very small kittens.",
	"A ball of yarn. Suspicious, but not kitten.",
	"A handwritten grocery list: eggs, milk, kitten?",
	"A wooden duck decoy that fooled nobody.",
	"A traffic light stuck on yellow.",
	"A hammock strung between nothing.",
	"A cereal box prize, still sealed.",
	"A cracked mirror. Robot looks fine.",
	"A tuba. Robot cannot lift it.",
	"An empty fishbowl. Kitten was not here. Or was it?",
	"A spatula of destiny.",
	"A small cloud, indoors.",
	"A fire extinguisher, never used, very proud.",
	"A jigsaw puzzle of a jigsaw puzzle.",
	"A clump of dryer lint with aspirations.",
	"A broken pencil. Pointless.",
	"A sign that reads \"This Is Not Kitten\". It is right.",
	"A vending machine selling only sadness.",
	"A carrot that fell off a snowman.",
	"A snorkel very far from the ocean.",
	"A sleeping bag with nobody in it.",
	"A pair of chopsticks holding hands.",
	"A beanbag chair slowly deflating.",
	"A lava lamp in a bad mood.",
	"An accordion taking a deep breath.",
	"A pile of receipts from 1997.",
	"A hubcap shining like a second moon.",
	"A grandfather clock, currently a grandmother clock.",
	"A mousetrap. Empty. Robot is relieved.",
	"A trampoline for ants.",
	"A porcelain cat. It does not move. Not kitten.",
	"A lucky horseshoe, upside down.",
	"A jelly bean of unknown flavor.",
	"A toothbrush in need of retirement.",
	"An acorn with big plans.",
	"A bag of popcorn kernels that refused to pop.",
	"A plush octopus with seven legs.",
	"A rusty nail. Robot checks its tetanus status.",
	"A wedding cake topper, alone.",
	"A cabbage. It is just a cabbage.",
	"A guitar pick shaped like a very small guitar.",
	"A desk fan turning its head slowly.",
	"A half-finished crossword. Seven across is \"kitten\".",
	"A pamphlet about the dangers of pamphlets.",
	"A gumball machine with one gumball left.",
	"A snow shovel in July.",
	"A trophy for coming second.",
	"A string of fairy lights, half of them out.",
	"A walkie-talkie hissing quietly.",
	"A coffee mug that says \"World's Okayest Robot\".",
	"A bowl of plastic fruit.",
	"A feather from an unusually large bird.",
	"A salt shaker without its pepper.",
	"A battery, mostly empty.",
	"A cardboard cutout of a famous actor.",
	"A fossil of a prehistoric keyboard.",
	"A birdbath full of marbles.",
	"A squeaky toy that has lost its squeak.",
	"A map to buried treasure. The X is right here. There is nothing.",
	"A loose floorboard with a secret under it. The secret is dust.",
	"A lightbulb with a bright idea.",
	"A tube of toothpaste squeezed from the middle.",
	"It's a telephone, ringing for someone else.",
	"A copy of \"Kittens: A Field Guide\". Robot takes notes.",
	"A pogo stick leaning against the air.",
	"A watering can, watering nothing.",
	"A pinwheel spinning without wind.",
	"A basket of laundry, sorted by mood.",
	"A bag of catnip. Kitten must be close.",
	"A stopwatch that only counts backward.",
	"A tiny bridge for crossing nothing.",
	"A whistle shaped like a smaller whistle.",
	"A neon sign that reads \"OPEN\", flickering.",
	"A shoe with a note inside: \"Keep looking.\"",
	"A jar of pennies, all heads up.",
	"A sandcastle, oddly well preserved.",
	"A pocket calculator that only knows how to add one.",
	"An unremarkable pebble. Robot remarks on it anyway.",
	"A cowbell. Robot needs more of it.",
	"A book of matches from a restaurant that closed long ago.",
	"A ship in a bottle, seasick.",
	"A ticket stub for a movie robot did not see.",
}
