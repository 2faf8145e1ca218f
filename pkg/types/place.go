// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Menu is one item on a place's menu. Price is free text and may carry a
// currency suffix ("4,500원").
type Menu struct {
	Name        string `json:"name" yaml:"name"`
	Price       string `json:"price" yaml:"price"`
	IsRecommend bool   `json:"is_recommend" yaml:"is_recommend"`
}

// Photo references an image of a place.
type Photo struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt" yaml:"alt"`
}

// Weekdays lists the hour keys in persisted order.
var Weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// Hours holds free-text opening hours for each weekday. An empty string means
// the spreadsheet left the day blank.
type Hours struct {
	Mon string `json:"mon" yaml:"mon"`
	Tue string `json:"tue" yaml:"tue"`
	Wed string `json:"wed" yaml:"wed"`
	Thu string `json:"thu" yaml:"thu"`
	Fri string `json:"fri" yaml:"fri"`
	Sat string `json:"sat" yaml:"sat"`
	Sun string `json:"sun" yaml:"sun"`
}

// Day returns the hours for a weekday key ("mon".."sun").
func (h Hours) Day(key string) string {
	switch key {
	case "mon":
		return h.Mon
	case "tue":
		return h.Tue
	case "wed":
		return h.Wed
	case "thu":
		return h.Thu
	case "fri":
		return h.Fri
	case "sat":
		return h.Sat
	case "sun":
		return h.Sun
	}
	return ""
}

// Place is one directory listing as persisted in the places store.
// Field order matches the on-disk JSON layout.
type Place struct {
	// ID is "<slug>-<row>", derived at import time.
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`

	// Lat and Lng stay nil until the geocoder fills them.
	Lat *float64 `json:"lat" yaml:"lat"`
	Lng *float64 `json:"lng" yaml:"lng"`

	Category   string   `json:"category" yaml:"category"`
	Intro      string   `json:"intro" yaml:"intro"`
	Rating     float64  `json:"rating" yaml:"rating"`
	Menus      []Menu   `json:"menus" yaml:"menus"`
	Hours      Hours    `json:"hours" yaml:"hours"`
	Holiday    []string `json:"holiday" yaml:"holiday"`
	TempClosed bool     `json:"temp_closed" yaml:"temp_closed"`
	Phone      string   `json:"phone" yaml:"phone"`
	NaverPlace string   `json:"naver_place" yaml:"naver_place"`
	Photos     []Photo  `json:"photos" yaml:"photos"`
	Tags       []string `json:"tags" yaml:"tags"`
}

// HasCoordinates reports whether both coordinates are set and non-zero.
func (p Place) HasCoordinates() bool {
	return p.Lat != nil && p.Lng != nil && *p.Lat != 0 && *p.Lng != 0
}

// HasRecommendedMenu reports whether any menu item is flagged as recommended.
func (p Place) HasRecommendedMenu() bool {
	for _, m := range p.Menus {
		if m.IsRecommend {
			return true
		}
	}
	return false
}
