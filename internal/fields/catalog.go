package fields

// Catalog is the fixed table of output fields, in evaluation order. Alias
// lists are ordered by precedence; the first raw key present in a tag set
// supplies the field.
var Catalog = []Converter{
	{Field: "title", Aliases: []string{"title"}, Kind: KindString},
	{Field: "artist", Aliases: []string{"artist"}, Kind: KindFirstOf},
	{Field: "album", Aliases: []string{"album"}, Kind: KindString},
	{Field: "genre", Aliases: []string{"genres", "genre"}, Kind: KindFirstOf},
	{Field: "lyricist", Aliases: []string{"lyricist"}, Kind: KindString},
	{Field: "composer", Aliases: []string{"composer"}, Kind: KindFirstOf},
	{Field: "composer_sort", Aliases: []string{"composersort"}, Kind: KindString},
	{Field: "arranger", Aliases: []string{"arranger"}, Kind: KindString},
	{Field: "grouping", Aliases: []string{"grouping"}, Kind: KindString},
	{Field: "track", Aliases: []string{"track", "tracknumber"}, Kind: KindInt},
	{Field: "tracktotal", Aliases: []string{"tracktotal", "trackc", "totaltracks"}, Kind: KindInt},
	{Field: "disc", Aliases: []string{"disc", "discnumber"}, Kind: KindInt},
	{Field: "disctotal", Aliases: []string{"disctotal", "discc", "totaldiscs"}, Kind: KindInt},
	{Field: "lyrics", Aliases: []string{"lyrics", "unsyncedlyrics"}, Kind: KindString},
	{Field: "comments", Aliases: []string{"description", "comment"}, Kind: KindString},
	{Field: "bpm", Aliases: []string{"bpm"}, Kind: KindInt},
	{Field: "comp", Aliases: []string{"compilation"}, Kind: KindBool},
	{Field: "albumartist", Aliases: []string{"albumartist", "album artist"}, Kind: KindString},
	{Field: "albumtype", Aliases: []string{"musicbrainz_albumtype"}, Kind: KindString},
	{Field: "label", Aliases: []string{"label", "publisher"}, Kind: KindFirstOf},
	{Field: "artist_sort", Aliases: []string{"artistsort"}, Kind: KindString},
	{Field: "albumartist_sort", Aliases: []string{"albumartistsort"}, Kind: KindString},
	{Field: "asin", Aliases: []string{"asin"}, Kind: KindString},
	{Field: "catalognum", Aliases: []string{"catalognumber"}, Kind: KindString},
	{Field: "disctitle", Aliases: []string{"discsubtitle"}, Kind: KindString},
	{Field: "encoder", Aliases: []string{"encodedby", "encoder"}, Kind: KindString},
	{Field: "script", Aliases: []string{"script"}, Kind: KindString},
	{Field: "language", Aliases: []string{"language"}, Kind: KindString},
	{Field: "country", Aliases: []string{"releasecountry"}, Kind: KindString},
	{Field: "albumstatus", Aliases: []string{"musicbrainz_albumstatus"}, Kind: KindString},
	{Field: "media", Aliases: []string{"media"}, Kind: KindString},
	{Field: "albumdisambig", Aliases: []string{"musicbrainz_albumcomment"}, Kind: KindString},
	{Field: "date", Aliases: []string{"date", "year"}, Kind: KindDate},
	{Field: "original_date", Aliases: []string{"originaldate"}, Kind: KindDate},
	{Field: "artist_credit", Aliases: []string{"artist_credit"}, Kind: KindString},
	{Field: "albumartist_credit", Aliases: []string{"albumartist_credit"}, Kind: KindString},
	{Field: "mb_trackid", Aliases: []string{"musicbrainz_trackid"}, Kind: KindString},
	{Field: "mb_releasetrackid", Aliases: []string{"musicbrainz_releasetrackid"}, Kind: KindString},
	{Field: "mb_albumid", Aliases: []string{"musicbrainz_albumid"}, Kind: KindString},
	{Field: "mb_artistid", Aliases: []string{"musicbrainz_artistid"}, Kind: KindString},
	{Field: "mb_albumartistid", Aliases: []string{"musicbrainz_albumartistid"}, Kind: KindString},
	{Field: "mb_releasegroupid", Aliases: []string{"musicbrainz_releasegroupid"}, Kind: KindString},
	{Field: "acoustid_fingerprint", Aliases: []string{"acoustid_fingerprint"}, Kind: KindString},
	{Field: "acoustid_id", Aliases: []string{"acoustid_id"}, Kind: KindString},
	{Field: "rg_track_gain", Aliases: []string{"replaygain_track_gain"}, Kind: KindDecibel},
	{Field: "rg_track_peak", Aliases: []string{"replaygain_track_peak"}, Kind: KindFloat},
	{Field: "rg_album_gain", Aliases: []string{"replaygain_album_gain"}, Kind: KindDecibel},
	{Field: "rg_album_peak", Aliases: []string{"replaygain_album_peak"}, Kind: KindFloat},
	{Field: "r128_track_gain", Aliases: []string{"r128_track_gain"}, Kind: KindInt},
	{Field: "r128_album_gain", Aliases: []string{"r128_album_gain"}, Kind: KindInt},
	{Field: "initial_key", Aliases: []string{"initialkey"}, Kind: KindString},
}
