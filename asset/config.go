package asset

// DefaultConfig is the configuration used when no -config file is given.
// Any file passed with -config is layered on top of it.
const DefaultConfig = `
# Level description file; empty loads the built-in maze
level = ""

# Wall block mesh (OBJ subset); empty uses the built-in cube
mesh = ""

# Grass: density*density samples per floor cell
grass_density = 6

# Seed for grass scatter and generated levels; 0 seeds from the clock
seed = 0

debug = false

[navigation]
tick_ms = 10
turn_step_degrees = 2.0
move_speed = 0.1
probe_radius = 0.3

[audio]
enabled = true
volume = -1.0

# Random level instead of a level file
[generate]
enabled = false
width = 21
height = 15
braiding = 0.3

# key = action
# actions: forward back left right turn_left turn_right
#          quit restart toggle_mute toggle_map
# "none" unbinds a default key
[keys]
`
