package level

import (
	"time"

	"github.com/dmelnik/tui-snake/internal/core"
)

// definition is the authoring form of a level: a string layout plus pacing.
// '#' marks walls on the border and obstacles in the interior.
type definition struct {
	number     int
	name       string
	interval   time.Duration
	foodTarget int
	spawn      core.Point
	layout     []string
}

// The campaign: ten boards, movement interval strictly shrinking from 400ms
// down to 80ms. Every layout keeps all free cells mutually reachable and
// leaves the spawn row clear.
var definitions = []definition{
	{
		number:     1,
		name:       "Open Field",
		interval:   400 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     2,
		name:       "Cross Roads",
		interval:   350 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#              #             #",
			"#              #             #",
			"#           #######          #",
			"#              #             #",
			"#              #             #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     3,
		name:       "Corner Blocks",
		interval:   300 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#  #####                     #",
			"#  #####                     #",
			"#  #####                     #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                     #####  #",
			"#                     #####  #",
			"#                     #####  #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     4,
		name:       "Corridors",
		interval:   250 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#                            #",
			"#   ################    ##   #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#   ################    ##   #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#   ################    ##   #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     5,
		name:       "Spiral Challenge",
		interval:   200 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#              #             #",
			"#             ###            #",
			"#            #####           #",
			"#           #######          #",
			"#            # ###           #",
			"#              ##            #",
			"#              #             #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     6,
		name:       "Border Patrol",
		interval:   180 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#  ###########  ###########  #",
			"#  #                      #  #",
			"#  #                      #  #",
			"#  #                      #  #",
			"#  #                      #  #",
			"#  #                      #  #",
			"#                            #",
			"#                            #",
			"#  #                      #  #",
			"#  #                      #  #",
			"#  #                      #  #",
			"#  #                      #  #",
			"#  #                      #  #",
			"#  ###########  ###########  #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     7,
		name:       "Scattered Chaos",
		interval:   150 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#                            #",
			"#    #                 #     #",
			"#                    #  #    #",
			"#   #      ##                #",
			"#     #     #        #       #",
			"#                     #      #",
			"#         #      #           #",
			"#                    ##      #",
			"#          #                 #",
			"#          #                 #",
			"#                            #",
			"#      #                     #",
			"#   #                   #    #",
			"#                            #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     8,
		name:       "Diamond Mine",
		interval:   120 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#             # #            #",
			"#            #   #           #",
			"#           #     #          #",
			"#          #       #         #",
			"#         #         #        #",
			"#          #       #         #",
			"#           #     #          #",
			"#            #   #           #",
			"#             # #            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     9,
		name:       "Complex Maze",
		interval:   100 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 10},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"# #######################    #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#    ####################### #",
			"#                            #",
			"#                            #",
			"#                            #",
			"# #######################    #",
			"#                            #",
			"#                            #",
			"#                            #",
			"#    ####################### #",
			"#                            #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
	{
		number:     10,
		name:       "Master Challenge",
		interval:   80 * time.Millisecond,
		foodTarget: 5,
		spawn:      core.Point{X: 4, Y: 9},
		layout: []string{
			"##############################",
			"#                            #",
			"#                            #",
			"#       # #   #      #       #",
			"#            #    #          #",
			"#                # #         #",
			"#  #   #                     #",
			"#               #       #    #",
			"#         #    #        #    #",
			"#         #   ## #    #      #",
			"#   #  # ##  ##### #         #",
			"#    #      #  #        #    #",
			"#   #  #       #       #     #",
			"#          #          #      #",
			"#         #                  #",
			"#             #              #",
			"#           ##  # #          #",
			"#                            #",
			"#                            #",
			"##############################",
		},
	},
}
