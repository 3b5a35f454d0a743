package aprsobj

// Datum table.  dx, dy, dz are the geocentric offsets in meters of each
// datum's origin from WGS 84 (three parameter Molodensky values from NIMA
// TR8350.2).  The order is alphabetical so it can be shown as a menu;
// nothing depends on the position of any entry.

type DatumID int

type Datum struct {
	Name      string
	Ellipsoid EllipsoidID
	DX        float64
	DY        float64
	DZ        float64
}

var datums = []Datum{
	{"Adindan", EllipsoidClarke1880, -166, -15, 204},
	{"Adindan (Burkina Faso)", EllipsoidClarke1880, -118, -14, 218},
	{"Adindan (Cameroon)", EllipsoidClarke1880, -134, -2, 210},
	{"Adindan (Ethiopia)", EllipsoidClarke1880, -165, -11, 206},
	{"Adindan (Mali)", EllipsoidClarke1880, -123, -20, 220},
	{"Adindan (Senegal)", EllipsoidClarke1880, -128, -18, 224},
	{"Adindan (Sudan)", EllipsoidClarke1880, -161, -14, 205},
	{"Afgooye", EllipsoidKrassovsky1940, -43, -163, 45},
	{"Ain el Abd 1970 (Bahrain)", EllipsoidInternational1924, -150, -250, -1},
	{"Ain el Abd 1970 (Saudi Arabia)", EllipsoidInternational1924, -143, -236, 7},
	{"American Samoa 1962", EllipsoidClarke1866, -115, 118, 426},
	{"Anna 1 Astro 1965", EllipsoidAustralianNational, -491, -22, 435},
	{"Antigua Island Astro 1943", EllipsoidClarke1880, -270, 13, 62},
	{"Arc 1950", EllipsoidClarke1880, -143, -90, -294},
	{"Arc 1950 (Botswana)", EllipsoidClarke1880, -138, -105, -289},
	{"Arc 1950 (Burundi)", EllipsoidClarke1880, -153, -5, -292},
	{"Arc 1950 (Lesotho)", EllipsoidClarke1880, -125, -108, -295},
	{"Arc 1950 (Malawi)", EllipsoidClarke1880, -161, -73, -317},
	{"Arc 1950 (Swaziland)", EllipsoidClarke1880, -134, -105, -295},
	{"Arc 1950 (Zaire)", EllipsoidClarke1880, -169, -19, -278},
	{"Arc 1950 (Zambia)", EllipsoidClarke1880, -147, -74, -283},
	{"Arc 1950 (Zimbabwe)", EllipsoidClarke1880, -142, -96, -293},
	{"Arc 1960", EllipsoidClarke1880, -160, -6, -302},
	{"Arc 1960 (Kenya)", EllipsoidClarke1880, -157, -2, -299},
	{"Arc 1960 (Tanzania)", EllipsoidClarke1880, -175, -23, -303},
	{"Ascension Island 1958", EllipsoidInternational1924, -205, 107, 53},
	{"Astro Beacon E 1945", EllipsoidInternational1924, 145, 75, -272},
	{"Astro DOS 71/4", EllipsoidInternational1924, -320, 550, -494},
	{"Astro Tern Island (FRIG) 1961", EllipsoidInternational1924, 114, -116, -333},
	{"Astronomical Station 1952", EllipsoidInternational1924, 124, -234, -25},
	{"Australian Geodetic 1966", EllipsoidAustralianNational, -133, -48, 148},
	{"Australian Geodetic 1984", EllipsoidAustralianNational, -134, -48, 149},
	{"Ayabelle Lighthouse", EllipsoidClarke1880, -79, -129, 145},
	{"Bellevue (IGN)", EllipsoidInternational1924, -127, -769, 472},
	{"Bermuda 1957", EllipsoidClarke1866, -73, 213, 296},
	{"Bissau", EllipsoidInternational1924, -173, 253, 27},
	{"Bogota Observatory", EllipsoidInternational1924, 307, 304, -318},
	{"Bukit Rimpah", EllipsoidBessel1841, -384, 664, -48},
	{"Camp Area Astro", EllipsoidInternational1924, -104, -129, 239},
	{"Campo Inchauspe 1969", EllipsoidInternational1924, -148, 136, 90},
	{"Canton Astro 1966", EllipsoidInternational1924, 298, -304, -375},
	{"Cape", EllipsoidClarke1880, -136, -108, -292},
	{"Cape Canaveral", EllipsoidClarke1866, -2, 151, 181},
	{"Carthage", EllipsoidClarke1880, -263, 6, 431},
	{"CH-1903", EllipsoidBessel1841, 674, 15, 405},
	{"Chatham Island Astro 1971", EllipsoidInternational1924, 175, -38, 113},
	{"Chua Astro", EllipsoidInternational1924, -134, 229, -29},
	{"Corrego Alegre", EllipsoidInternational1924, -206, 172, -6},
	{"Dabola", EllipsoidClarke1880, -83, 37, 124},
	{"Deception Island", EllipsoidClarke1880, 260, 12, -147},
	{"Djakarta (Batavia)", EllipsoidBessel1841, -377, 681, -50},
	{"DOS 1968", EllipsoidInternational1924, 230, -199, -752},
	{"Easter Island 1967", EllipsoidInternational1924, 211, 147, 111},
	{"Estonia 1937", EllipsoidBessel1841, 374, 150, 588},
	{"European 1950", EllipsoidInternational1924, -87, -98, -121},
	{"European 1950 (Cyprus)", EllipsoidInternational1924, -104, -101, -140},
	{"European 1950 (Egypt)", EllipsoidInternational1924, -130, -117, -151},
	{"European 1950 (England, Channel Islands)", EllipsoidInternational1924, -86, -96, -120},
	{"European 1950 (Finland, Norway)", EllipsoidInternational1924, -87, -95, -120},
	{"European 1950 (Greece)", EllipsoidInternational1924, -84, -95, -130},
	{"European 1950 (Iran)", EllipsoidInternational1924, -117, -132, -164},
	{"European 1950 (Italy, Sardinia)", EllipsoidInternational1924, -97, -103, -120},
	{"European 1950 (Italy, Sicily)", EllipsoidInternational1924, -97, -88, -135},
	{"European 1950 (Malta)", EllipsoidInternational1924, -107, -88, -149},
	{"European 1950 (Middle East)", EllipsoidInternational1924, -103, -106, -141},
	{"European 1950 (Portugal, Spain)", EllipsoidInternational1924, -84, -107, -120},
	{"European 1950 (Tunisia)", EllipsoidInternational1924, -112, -77, -145},
	{"European 1950 (Western Europe)", EllipsoidInternational1924, -87, -96, -120},
	{"European 1979", EllipsoidInternational1924, -86, -98, -119},
	{"Fort Thomas 1955", EllipsoidClarke1880, -7, 215, 225},
	{"Gan 1970", EllipsoidInternational1924, -133, -321, 50},
	{"Geodetic Datum 1949", EllipsoidInternational1924, 84, -22, 209},
	{"Graciosa Base SW 1948", EllipsoidInternational1924, -104, 167, -38},
	{"Guam 1963", EllipsoidClarke1866, -100, -248, 259},
	{"Gunung Segara", EllipsoidBessel1841, -403, 684, 41},
	{"Herat North", EllipsoidInternational1924, -333, -222, 114},
	{"Hermannskogel", EllipsoidBessel1841, 682, -203, 480},
	{"GUX 1 Astro", EllipsoidInternational1924, 252, -209, -751},
	{"Hjorsey 1955", EllipsoidInternational1924, -73, 46, -86},
	{"Hong Kong 1963", EllipsoidInternational1924, -156, -271, -189},
	{"Hu-Tzu-Shan", EllipsoidInternational1924, -637, -549, -203},
	{"Indian (Bangladesh)", EllipsoidEverestIndia1830, 282, 726, 254},
	{"Indian (India, Nepal)", EllipsoidEverestIndia1956, 295, 736, 257},
	{"Indian (Pakistan)", EllipsoidEverestPakistan, 283, 682, 231},
	{"Indian 1954", EllipsoidEverestIndia1830, 217, 823, 299},
	{"Indian 1960 (Con Son Island)", EllipsoidEverestIndia1830, 182, 915, 344},
	{"Indian 1960 (Vietnam)", EllipsoidEverestIndia1830, 198, 881, 317},
	{"Indian 1975", EllipsoidEverestIndia1830, 210, 814, 289},
	{"Indonesian 1974", EllipsoidIndonesian1974, -24, -15, 5},
	{"Ireland 1965", EllipsoidModifiedAiry, 506, -122, 611},
	{"ISTS 061 Astro 1968", EllipsoidInternational1924, -794, 119, -298},
	{"ISTS 073 Astro 1969", EllipsoidInternational1924, 208, -435, -229},
	{"Johnston Island 1961", EllipsoidInternational1924, 189, -79, -202},
	{"Kandawala", EllipsoidEverestIndia1830, -97, 787, 86},
	{"Kerguelen Island 1949", EllipsoidInternational1924, 145, -187, 103},
	{"Kertau 1948", EllipsoidEverestMalaySing1948, -11, 851, 5},
	{"Korean Geodetic System 1995", EllipsoidWGS84, 0, 0, 0},
	{"Kusaie Astro 1951", EllipsoidInternational1924, 647, 1777, -1124},
	{"L. C. 5 Astro 1961", EllipsoidClarke1866, 42, 124, 147},
	{"Leigon", EllipsoidClarke1880, -130, 29, 364},
	{"Liberia 1964", EllipsoidClarke1880, -90, 40, 88},
	{"Lisbon (Castelo di Sao Jorge)", EllipsoidInternational1924, -307, -92, 127},
	{"Luzon (Mindanao)", EllipsoidClarke1866, -133, -79, -72},
	{"Luzon (Philippines)", EllipsoidClarke1866, -133, -77, -51},
	{"M'Poraloko", EllipsoidClarke1880, -74, -130, 42},
	{"Mahe 1971", EllipsoidClarke1880, 41, -220, -134},
	{"Massawa", EllipsoidBessel1841, 639, 405, 60},
	{"Merchich", EllipsoidClarke1880, 31, 146, 47},
	{"Midway Astro 1961", EllipsoidInternational1924, 912, -58, 1227},
	{"Minna (Cameroon)", EllipsoidClarke1880, -81, -84, 115},
	{"Minna (Nigeria)", EllipsoidClarke1880, -92, -93, 122},
	{"Montserrat Island Astro 1958", EllipsoidClarke1880, 174, 359, 365},
	{"NAD27 Alaska", EllipsoidClarke1866, -5, 135, 172},
	{"NAD27 Alaska (Aleutian East)", EllipsoidClarke1866, -2, 152, 149},
	{"NAD27 Alaska (Aleutian West)", EllipsoidClarke1866, 2, 204, 105},
	{"NAD27 Bahamas", EllipsoidClarke1866, -4, 154, 178},
	{"NAD27 Canada", EllipsoidClarke1866, -10, 158, 187},
	{"NAD27 Canada (Alberta, BC)", EllipsoidClarke1866, -7, 162, 188},
	{"NAD27 Canada (Manitoba, Ontario)", EllipsoidClarke1866, -9, 157, 184},
	{"NAD27 Canada (Newfoundland, Maritimes)", EllipsoidClarke1866, -22, 160, 190},
	{"NAD27 Canada (Northwest Territories, Saskatchewan)", EllipsoidClarke1866, 4, 159, 188},
	{"NAD27 Canada (Yukon)", EllipsoidClarke1866, -7, 139, 181},
	{"NAD27 Canal Zone", EllipsoidClarke1866, 0, 125, 201},
	{"NAD27 Caribbean", EllipsoidClarke1866, -3, 142, 183},
	{"NAD27 Central America", EllipsoidClarke1866, 0, 125, 194},
	{"NAD27 CONUS", EllipsoidClarke1866, -8, 160, 176},
	{"NAD27 CONUS (East of Mississippi)", EllipsoidClarke1866, -9, 161, 179},
	{"NAD27 CONUS (West of Mississippi)", EllipsoidClarke1866, -8, 159, 175},
	{"NAD27 Cuba", EllipsoidClarke1866, -9, 152, 178},
	{"NAD27 Greenland", EllipsoidClarke1866, 11, 114, 195},
	{"NAD27 Mexico", EllipsoidClarke1866, -12, 130, 190},
	{"NAD27 San Salvador", EllipsoidClarke1866, 1, 140, 165},
	{"NAD83", EllipsoidGRS80, 0, 0, 0},
	{"NAD83 (Alaska, Aleutians)", EllipsoidGRS80, -2, 0, 4},
	{"NAD83 (Hawaii)", EllipsoidGRS80, 1, 1, -1},
	{"Nahrwan (Masirah Island)", EllipsoidClarke1880, -247, -148, 369},
	{"Nahrwan (Saudi Arabia)", EllipsoidClarke1880, -243, -192, 477},
	{"Nahrwan (United Arab Emirates)", EllipsoidClarke1880, -249, -156, 381},
	{"Naparima BWI", EllipsoidInternational1924, -10, 375, 165},
	{"North Sahara 1959", EllipsoidClarke1880, -186, -93, 310},
	{"Observatorio Meteorologico 1939", EllipsoidInternational1924, -425, -169, 81},
	{"Old Egyptian 1907", EllipsoidHelmert1906, -130, 110, -13},
	{"Old Hawaiian", EllipsoidClarke1866, 61, -285, -181},
	{"Old Hawaiian (Hawaii)", EllipsoidClarke1866, 89, -279, -183},
	{"Old Hawaiian (Kauai)", EllipsoidClarke1866, 45, -290, -172},
	{"Old Hawaiian (Maui)", EllipsoidClarke1866, 65, -290, -190},
	{"Old Hawaiian (Oahu)", EllipsoidClarke1866, 58, -283, -182},
	{"Oman", EllipsoidClarke1880, -346, -1, 224},
	{"Ordnance Survey Great Britain 1936", EllipsoidAiry1830, 375, -111, 431},
	{"Ordnance Survey GB 1936 (England)", EllipsoidAiry1830, 371, -112, 434},
	{"Ordnance Survey GB 1936 (Scotland, Shetland)", EllipsoidAiry1830, 384, -111, 425},
	{"Ordnance Survey GB 1936 (Wales)", EllipsoidAiry1830, 370, -108, 434},
	{"Pico de las Nieves", EllipsoidInternational1924, -307, -92, 127},
	{"Pitcairn Astro 1967", EllipsoidInternational1924, 185, 165, 42},
	{"Point 58", EllipsoidClarke1880, -106, -129, 165},
	{"Pointe Noire 1948", EllipsoidClarke1880, -148, 51, -291},
	{"Porto Santo 1936", EllipsoidInternational1924, -499, -249, 314},
	{"Provisional South American 1956", EllipsoidInternational1924, -288, 175, -376},
	{"Provisional South American 1956 (Bolivia)", EllipsoidInternational1924, -270, 188, -388},
	{"Provisional South American 1956 (Chile North)", EllipsoidInternational1924, -270, 183, -390},
	{"Provisional South American 1956 (Chile South)", EllipsoidInternational1924, -305, 243, -442},
	{"Provisional South American 1956 (Colombia)", EllipsoidInternational1924, -282, 169, -371},
	{"Provisional South American 1956 (Ecuador)", EllipsoidInternational1924, -278, 171, -367},
	{"Provisional South American 1956 (Guyana)", EllipsoidInternational1924, -298, 159, -369},
	{"Provisional South American 1956 (Peru)", EllipsoidInternational1924, -279, 175, -379},
	{"Provisional South American 1956 (Venezuela)", EllipsoidInternational1924, -295, 173, -371},
	{"Provisional South Chilean 1963", EllipsoidInternational1924, 16, 196, 93},
	{"Puerto Rico", EllipsoidClarke1866, 11, 72, -101},
	{"Pulkovo 1942", EllipsoidKrassovsky1940, 28, -130, -95},
	{"Qatar National", EllipsoidInternational1924, -128, -283, 22},
	{"Qornoq", EllipsoidInternational1924, 164, 138, -189},
	{"Reunion", EllipsoidInternational1924, 94, -948, -1262},
	{"Rome 1940", EllipsoidInternational1924, -225, -65, 9},
	{"RT 90", EllipsoidBessel1841, 498, -36, 568},
	{"S-42 (Pulkovo 1942, Hungary)", EllipsoidKrassovsky1940, 28, -121, -77},
	{"S-JTSK", EllipsoidBessel1841, 589, 76, 480},
	{"Santo (DOS) 1965", EllipsoidInternational1924, 170, 42, 84},
	{"Sao Braz", EllipsoidInternational1924, -203, 141, 53},
	{"Sapper Hill 1943", EllipsoidInternational1924, -355, 21, 72},
	{"Schwarzeck", EllipsoidBessel1841Namibia, 616, 97, -251},
	{"Selvagem Grande 1938", EllipsoidInternational1924, -289, -124, 60},
	{"Sierra Leone 1960", EllipsoidClarke1880, -88, 4, 101},
	{"SIRGAS", EllipsoidGRS80, 0, 0, 0},
	{"South American 1969", EllipsoidSouthAmerican1969, -57, 1, -41},
	{"South American 1969 (Argentina)", EllipsoidSouthAmerican1969, -62, -1, -37},
	{"South American 1969 (Bolivia)", EllipsoidSouthAmerican1969, -61, 2, -48},
	{"South American 1969 (Brazil)", EllipsoidSouthAmerican1969, -60, -2, -41},
	{"South American 1969 (Chile)", EllipsoidSouthAmerican1969, -75, -1, -44},
	{"South American 1969 (Colombia)", EllipsoidSouthAmerican1969, -44, 6, -36},
	{"South American 1969 (Ecuador)", EllipsoidSouthAmerican1969, -48, 3, -44},
	{"South American 1969 (Ecuador, Baltra, Galapagos)", EllipsoidSouthAmerican1969, -47, 26, -42},
	{"South American 1969 (Guyana)", EllipsoidSouthAmerican1969, -53, 3, -47},
	{"South American 1969 (Paraguay)", EllipsoidSouthAmerican1969, -61, 2, -33},
	{"South American 1969 (Peru)", EllipsoidSouthAmerican1969, -58, 0, -44},
	{"South American 1969 (Trinidad, Tobago)", EllipsoidSouthAmerican1969, -45, 12, -33},
	{"South American 1969 (Venezuela)", EllipsoidSouthAmerican1969, -45, 8, -33},
	{"South Asia", EllipsoidModifiedFischer1960, 7, -10, -26},
	{"Tananarive Observatory 1925", EllipsoidInternational1924, -189, -242, -91},
	{"Timbalai 1948", EllipsoidEverestSabahSarawak, -679, 669, -48},
	{"Tokyo", EllipsoidBessel1841, -148, 507, 685},
	{"Tokyo (Japan)", EllipsoidBessel1841, -148, 507, 685},
	{"Tokyo (Korea)", EllipsoidBessel1841, -146, 507, 687},
	{"Tokyo (Okinawa)", EllipsoidBessel1841, -158, 507, 676},
	{"Tristan Astro 1968", EllipsoidInternational1924, -632, 438, -609},
	{"Viti Levu 1916", EllipsoidClarke1880, 51, 391, -36},
	{"Voirol 1874", EllipsoidClarke1880, -73, -247, 227},
	{"Voirol 1960", EllipsoidClarke1880, -123, -206, 219},
	{"Wake Island Astro 1952", EllipsoidInternational1924, 276, -57, 149},
	{"Wake-Eniwetok 1960", EllipsoidHough1960, 102, 52, -38},
	{"WGS 72", EllipsoidWGS72, 0, 0, 4.5},
	{"WGS 84", EllipsoidWGS84, 0, 0, 0},
	{"Yacare", EllipsoidInternational1924, -155, 171, 37},
	{"Zanderij", EllipsoidInternational1924, -265, 120, -358},
}

// DatumWGS84 is looked up by name so the table can be reordered freely.
var DatumWGS84 = mustDatumByName("WGS 84")

func mustDatumByName(name string) DatumID {
	var id, ok = DatumByName(name)
	if !ok {
		panic("datum table has no entry for " + name)
	}
	return id
}

// DatumByName finds a datum by its exact table name.
func DatumByName(name string) (DatumID, bool) {
	for i := range datums {
		if datums[i].Name == name {
			return DatumID(i), true
		}
	}
	return -1, false
}

// NumDatums is the size of the datum table.
func NumDatums() int {
	return len(datums)
}

func (id DatumID) Valid() bool {
	return id >= 0 && int(id) < len(datums)
}

func (id DatumID) Datum() Datum {
	return datums[id]
}

func (id DatumID) String() string {
	if !id.Valid() {
		return "invalid datum"
	}
	return datums[id].Name
}
