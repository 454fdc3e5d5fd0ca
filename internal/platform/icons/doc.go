// Package icons names the Lucide icons the product renders and ships the
// inline SVG sprite that defines them.
//
// Pages reference icons by symbol id so the sprite is emitted once per
// document regardless of how many times an icon appears.
package icons
