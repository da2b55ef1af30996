package config

import "fmt"

// ActorID names a sprite/behavior archetype. The same id is used for sprite
// lookup in the actor image package and for entity configuration.
type ActorID int

const (
	ActorNone ActorID = iota

	// Player
	Duke_LEFT
	Duke_RIGHT
	Dukes_ship_LEFT
	Dukes_ship_RIGHT
	Dukes_ship_after_exiting_LEFT
	Dukes_ship_after_exiting_RIGHT

	// Player projectiles
	Duke_regular_shot_horizontal
	Duke_regular_shot_vertical
	Duke_laser_shot_horizontal
	Duke_laser_shot_vertical
	Duke_rocket_left
	Duke_rocket_right
	Duke_rocket_up
	Duke_rocket_down
	Duke_flame_shot_left
	Duke_flame_shot_right
	Duke_flame_shot_up
	Duke_flame_shot_down
	Dukes_ship_laser_shot
	Reactor_fire_LEFT
	Reactor_fire_RIGHT

	// Enemy projectiles
	Enemy_laser_shot_LEFT
	Enemy_laser_shot_RIGHT
	Enemy_rocket_left
	Enemy_rocket_right
	Enemy_rocket_up
	Enemy_rocket_2_up
	Enemy_rocket_2_down
	Slime_drop

	// Muzzle flashes
	Enemy_laser_muzzle_flash_1
	Enemy_laser_muzzle_flash_2
	Muzzle_flash_up
	Muzzle_flash_down
	Muzzle_flash_left
	Muzzle_flash_right

	// Effects
	Explosion_FX_1
	Explosion_FX_2
	Smoke_cloud_FX
	Shot_impact_FX
	Small_explosion_FX
	Flame_FX
	White_circle_flash_FX
	Nuclear_explosion
	Rigelatin_soldier_debris
	Spider_shaken_off
	Score_number_FX_100
	Score_number_FX_500
	Score_number_FX_2000
	Score_number_FX_5000
	Score_number_FX_10000

	// Enemies
	Rocket_launcher_turret
	Laser_turret
	Spider
	Skeleton
	Hoverbot
	Hoverbot_teleport_FX
	Blue_guard_LEFT
	Blue_guard_RIGHT
	Watchbot
	Security_camera_ceiling
	Security_camera_floor
	Slime_pipe
	Boss_Episode_2
	Boss_Episode_2_head

	// Hazards
	Lava_fountain
	Fire_on_floor_1
	Smash_hammer
	Electric_reactor

	// Collectables
	Red_box_soda
	Health_molecule
	Nuclear_molecule
	Blue_key
	Circuit_card
	Letter_N
	Letter_U
	Letter_K
	Letter_E
	Letter_M
	Rapid_fire_icon
	Cloaking_device_icon
	Flame_thrower_icon
	Rocket_launcher_icon
	Laser_icon

	// Interactive objects
	Respawn_checkpoint
	Elevator
	Force_field
	Key_hole_blue
	Sliding_door_vertical
	Hint_globe
	Radar_dish
	Blowing_fan

	// Triggers and level markers (no sprite)
	Level_exit
	Trigger_backdrop_switch
	Water_body
	Dynamic_geometry_1
	Dynamic_geometry_2
	Dynamic_geometry_3
	META_Appear_only_in_med_hard_difficulty
	META_Appear_only_in_hard_difficulty
	META_Dynamic_geometry_marker_1
	META_Dynamic_geometry_marker_2

	ActorIDCount // Must be last - used for array sizing
)

var actorNames = map[ActorID]string{
	ActorNone:                               "None",
	Duke_LEFT:                               "Duke_LEFT",
	Duke_RIGHT:                              "Duke_RIGHT",
	Dukes_ship_LEFT:                         "Dukes_ship_LEFT",
	Dukes_ship_RIGHT:                        "Dukes_ship_RIGHT",
	Dukes_ship_after_exiting_LEFT:           "Dukes_ship_after_exiting_LEFT",
	Dukes_ship_after_exiting_RIGHT:          "Dukes_ship_after_exiting_RIGHT",
	Duke_regular_shot_horizontal:            "Duke_regular_shot_horizontal",
	Duke_regular_shot_vertical:              "Duke_regular_shot_vertical",
	Duke_laser_shot_horizontal:              "Duke_laser_shot_horizontal",
	Duke_laser_shot_vertical:                "Duke_laser_shot_vertical",
	Duke_rocket_left:                        "Duke_rocket_left",
	Duke_rocket_right:                       "Duke_rocket_right",
	Duke_rocket_up:                          "Duke_rocket_up",
	Duke_rocket_down:                        "Duke_rocket_down",
	Duke_flame_shot_left:                    "Duke_flame_shot_left",
	Duke_flame_shot_right:                   "Duke_flame_shot_right",
	Duke_flame_shot_up:                      "Duke_flame_shot_up",
	Duke_flame_shot_down:                    "Duke_flame_shot_down",
	Dukes_ship_laser_shot:                   "Dukes_ship_laser_shot",
	Reactor_fire_LEFT:                       "Reactor_fire_LEFT",
	Reactor_fire_RIGHT:                      "Reactor_fire_RIGHT",
	Enemy_laser_shot_LEFT:                   "Enemy_laser_shot_LEFT",
	Enemy_laser_shot_RIGHT:                  "Enemy_laser_shot_RIGHT",
	Enemy_rocket_left:                       "Enemy_rocket_left",
	Enemy_rocket_right:                      "Enemy_rocket_right",
	Enemy_rocket_up:                         "Enemy_rocket_up",
	Enemy_rocket_2_up:                       "Enemy_rocket_2_up",
	Enemy_rocket_2_down:                     "Enemy_rocket_2_down",
	Slime_drop:                              "Slime_drop",
	Enemy_laser_muzzle_flash_1:              "Enemy_laser_muzzle_flash_1",
	Enemy_laser_muzzle_flash_2:              "Enemy_laser_muzzle_flash_2",
	Muzzle_flash_up:                         "Muzzle_flash_up",
	Muzzle_flash_down:                       "Muzzle_flash_down",
	Muzzle_flash_left:                       "Muzzle_flash_left",
	Muzzle_flash_right:                      "Muzzle_flash_right",
	Explosion_FX_1:                          "Explosion_FX_1",
	Explosion_FX_2:                          "Explosion_FX_2",
	Smoke_cloud_FX:                          "Smoke_cloud_FX",
	Shot_impact_FX:                          "Shot_impact_FX",
	Small_explosion_FX:                      "Small_explosion_FX",
	Flame_FX:                                "Flame_FX",
	White_circle_flash_FX:                   "White_circle_flash_FX",
	Nuclear_explosion:                       "Nuclear_explosion",
	Spider_shaken_off:                       "Spider_shaken_off",
	Rigelatin_soldier_debris:                "Rigelatin_soldier_debris",
	Score_number_FX_100:                     "Score_number_FX_100",
	Score_number_FX_500:                     "Score_number_FX_500",
	Score_number_FX_2000:                    "Score_number_FX_2000",
	Score_number_FX_5000:                    "Score_number_FX_5000",
	Score_number_FX_10000:                   "Score_number_FX_10000",
	Rocket_launcher_turret:                  "Rocket_launcher_turret",
	Laser_turret:                            "Laser_turret",
	Spider:                                  "Spider",
	Skeleton:                                "Skeleton",
	Hoverbot:                                "Hoverbot",
	Hoverbot_teleport_FX:                    "Hoverbot_teleport_FX",
	Blue_guard_LEFT:                         "Blue_guard_LEFT",
	Blue_guard_RIGHT:                        "Blue_guard_RIGHT",
	Watchbot:                                "Watchbot",
	Security_camera_ceiling:                 "Security_camera_ceiling",
	Security_camera_floor:                   "Security_camera_floor",
	Slime_pipe:                              "Slime_pipe",
	Boss_Episode_2:                          "Boss_Episode_2",
	Boss_Episode_2_head:                     "Boss_Episode_2_head",
	Lava_fountain:                           "Lava_fountain",
	Fire_on_floor_1:                         "Fire_on_floor_1",
	Smash_hammer:                            "Smash_hammer",
	Electric_reactor:                        "Electric_reactor",
	Red_box_soda:                            "Red_box_soda",
	Health_molecule:                         "Health_molecule",
	Nuclear_molecule:                        "Nuclear_molecule",
	Blue_key:                                "Blue_key",
	Circuit_card:                            "Circuit_card",
	Letter_N:                                "Letter_N",
	Letter_U:                                "Letter_U",
	Letter_K:                                "Letter_K",
	Letter_E:                                "Letter_E",
	Letter_M:                                "Letter_M",
	Rapid_fire_icon:                         "Rapid_fire_icon",
	Cloaking_device_icon:                    "Cloaking_device_icon",
	Flame_thrower_icon:                      "Flame_thrower_icon",
	Rocket_launcher_icon:                    "Rocket_launcher_icon",
	Laser_icon:                              "Laser_icon",
	Respawn_checkpoint:                      "Respawn_checkpoint",
	Elevator:                                "Elevator",
	Force_field:                             "Force_field",
	Key_hole_blue:                           "Key_hole_blue",
	Sliding_door_vertical:                   "Sliding_door_vertical",
	Hint_globe:                              "Hint_globe",
	Radar_dish:                              "Radar_dish",
	Blowing_fan:                             "Blowing_fan",
	Level_exit:                              "Level_exit",
	Trigger_backdrop_switch:                 "Trigger_backdrop_switch",
	Water_body:                              "Water_body",
	Dynamic_geometry_1:                      "Dynamic_geometry_1",
	Dynamic_geometry_2:                      "Dynamic_geometry_2",
	Dynamic_geometry_3:                      "Dynamic_geometry_3",
	META_Appear_only_in_med_hard_difficulty: "META_Appear_only_in_med_hard_difficulty",
	META_Appear_only_in_hard_difficulty:     "META_Appear_only_in_hard_difficulty",
	META_Dynamic_geometry_marker_1:          "META_Dynamic_geometry_marker_1",
	META_Dynamic_geometry_marker_2:          "META_Dynamic_geometry_marker_2",
}

var actorsByName map[string]ActorID

func init() {
	actorsByName = make(map[string]ActorID, len(actorNames))
	for id, name := range actorNames {
		actorsByName[name] = id
	}
}

func (id ActorID) String() string {
	if name, ok := actorNames[id]; ok {
		return name
	}
	return fmt.Sprintf("ActorID(%d)", int(id))
}

// ActorIDByName resolves a legacy actor name as used in level files and the
// actor manifest.
func ActorIDByName(name string) (ActorID, bool) {
	id, ok := actorsByName[name]
	return id, ok
}

// IsMetaMarker reports whether id is a difficulty or dynamic geometry marker.
// Markers are consumed while preprocessing level data and never become entities.
func IsMetaMarker(id ActorID) bool {
	switch id {
	case META_Appear_only_in_med_hard_difficulty,
		META_Appear_only_in_hard_difficulty,
		META_Dynamic_geometry_marker_1,
		META_Dynamic_geometry_marker_2:
		return true
	}
	return false
}

// IsPlayer reports whether id is one of the player start actors.
func IsPlayer(id ActorID) bool {
	return id == Duke_LEFT || id == Duke_RIGHT
}

// HasAssociatedSprite reports whether id has images in the actor package.
func HasAssociatedSprite(id ActorID) bool {
	switch id {
	case ActorNone,
		Level_exit,
		Trigger_backdrop_switch,
		Water_body,
		Dynamic_geometry_1,
		Dynamic_geometry_2,
		Dynamic_geometry_3:
		return false
	}
	return !IsMetaMarker(id)
}

// Placeable reports whether id may appear in a preprocessed level actor list.
func Placeable(id ActorID) bool {
	return id > ActorNone && id < ActorIDCount && !IsMetaMarker(id)
}
