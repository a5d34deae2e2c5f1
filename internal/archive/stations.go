package archive

import (
	"fmt"
	"sort"
	"strings"
)

// NamedShow identifies a recurring broadcast whose archive identifiers
// follow the NETWORK_DATE_UTCTIME_SHOWID convention.
type NamedShow struct {
	ShowID  string
	UTCTime string
	Network string
}

// Identifier builds the aired-show identifier for a broadcast date given as
// YYYYMMDD.
func (n NamedShow) Identifier(date string) string {
	return n.Network + "_" + date + "_" + n.UTCTime + "_" + n.ShowID
}

var namedShows = map[string]NamedShow{
	"oreilly": {ShowID: "The_OReilly_Factor", UTCTime: "010000", Network: "FOXNEWS"},
	"redeye":  {ShowID: "Red_Eye", UTCTime: "070000", Network: "FOXNEWSW"},
	"kelly":   {ShowID: "The_Kelly_File", UTCTime: "020000", Network: "FOXNEWSW"},
}

// LookupNamedShow resolves a short show key to its identifier components.
func LookupNamedShow(key string) (NamedShow, bool) {
	show, ok := namedShows[strings.ToLower(strings.TrimSpace(key))]
	return show, ok
}

// NamedShowDownloadURL builds the caption base URL for a named show aired on
// the given YYYYMMDD date.
func (c *Client) NamedShowDownloadURL(key, date string) (string, error) {
	show, ok := LookupNamedShow(key)
	if !ok {
		return "", fmt.Errorf("unknown show key %q", key)
	}
	return c.CaptionBaseURL(show.Identifier(date))
}

// NetworkName resolves an archive channel code to its network display name.
func NetworkName(code string) (string, bool) {
	name, ok := stationNetworks[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// StationCodes returns every known channel code in sorted order.
func StationCodes() []string {
	codes := make([]string, 0, len(stationNetworks))
	for code := range stationNetworks {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// stationNetworks maps archive channel codes to network names. Constant
// data; read-only after process start.
var stationNetworks = map[string]string{
	"ALJAZAM":   "Al Jazeera America",
	"BLOOMBERG": "Bloomberg",
	"CNBC":      "CNBC",
	"CNN":       "CNN",
	"CNNW":      "CNN",
	"COM":       "Comedy Central",
	"CSPAN":     "CSPAN",
	"CSPAN2":    "CSPAN",
	"CSPAN3":    "CSPAN",
	"CURRENT":   "Current",
	"FBC":       "FOX Business",
	"FOXNEWS":   "FOX News",
	"FOXNEWSW":  "FOX News",
	"KBCW":      "CW",
	"KCAU":      "ABC",
	"KCCI":      "Me-TV",
	"KCRG":      "ABC",
	"KCSM":      "PBS",
	"KDTV":      "Univision",
	"KGAN":      "CBS",
	"KGO":       "ABC",
	"KLAS":      "CBS",
	"KMEG":      "CBS",
	"KNTV":      "NBC",
	"KOLO":      "ABC",
	"KPIX":      "CBS",
	"KQED":      "PBS",
	"KQEH":      "PBS",
	"KRCB":      "PBS",
	"KSNV":      "NBC",
	"KSTS":      "Telemundo",
	"KTIV":      "NBC",
	"KTNV":      "ABC",
	"KTVN":      "CBS",
	"KTVU":      "FOX",
	"KUSA":      "NBC",
	"KVVU":      "FOX",
	"KWWL":      "NBC",
	"KYW":       "CBS",
	"LINKTV":    "LINKTV",
	"MSNBC":     "MSNBC",
	"MSNBCW":    "MSNBC",
	"WABC":      "ABC",
	"WBAL":      "NBC",
	"WBFF":      "FOX",
	"WBZ":       "CBS",
	"WCAU":      "NBC",
	"WCBS":      "CBS",
	"WCPO":      "ABC",
	"WCVB":      "ABC",
	"WESH":      "NBC",
	"WEWS":      "ABC",
	"WFDC":      "Univision",
	"WFLA":      "NBC",
	"WFTS":      "ABC",
	"WFTV":      "ABC",
	"WFXT":      "FOX",
	"WGN":       "CW",
	"WHDH":      "NBC",
	"WHO":       "NBC",
	"WIS":       "NBC",
	"WJLA":      "ABC",
	"WJW":       "FOX",
	"WJZ":       "CBS",
	"WKMG":      "CBS",
	"WKRC":      "CBS",
	"WKYC":      "NBC",
	"WLTX":      "CBS",
	"WLWT":      "NBC",
	"WMAR":      "ABC",
	"WMPT":      "PBS",
	"WMUR":      "ABC",
	"WNBC":      "NBC",
	"WNYW":      "FOX",
	"WOI":       "ABC",
	"WOIO":      "CBS",
	"WPLG":      "ABC",
	"WPVI":      "ABC",
	"WRAL":      "CBS",
	"WRC":       "NBC",
	"WSPA":      "CBS",
	"WTTG":      "FOX",
	"WTVD":      "ABC",
	"WTVT":      "FOX",
	"WTXF":      "FOX",
	"WUSA":      "CBS",
	"WUVP":      "Univision",
	"WYFF":      "NBC",
}
