// Package seed holds the reference dataset used to bootstrap an empty
// location registry.
package seed

import (
	"bazaar/internal/domain/entity"

	"github.com/paulmach/orb"
)

// States lists the Nigerian states (plus the federal capital territory as
// "Abuja") recognised by the registry.
var States = []string{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Abuja", "Bauchi", "Bayelsa",
	"Benue", "Borno", "Cross River", "Delta", "Ebonyi", "Edo", "Ekiti",
	"Enugu", "Gombe", "Imo", "Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi",
	"Kogi", "Kwara", "Lagos", "Nassarawa", "Niger", "Ogun", "Ondo", "Osun",
	"Oyo", "Plateau", "Rivers", "Sokoto", "Taraba", "Yobe", "Zamfara",
}

// StateCoordinates maps each state to its approximate centre point,
// longitude first.
var StateCoordinates = map[string]orb.Point{
	"Lagos":       {3.3792, 6.5244},
	"Abuja":       {7.4951, 9.0579},
	"Kano":        {8.5920, 12.0022},
	"Rivers":      {7.0498, 4.8156},
	"Oyo":         {3.9333, 7.8500},
	"Kaduna":      {7.4333, 10.5167},
	"Ogun":        {3.3489, 7.1608},
	"Anambra":     {7.0670, 6.2209},
	"Enugu":       {7.5464, 6.4584},
	"Delta":       {5.6800, 5.8904},
	"Edo":         {5.8987, 6.5438},
	"Imo":         {7.0261, 5.4920},
	"Kwara":       {4.5418, 8.4799},
	"Osun":        {4.5200, 7.5629},
	"Ondo":        {5.2000, 7.2500},
	"Abia":        {7.5248, 5.4527},
	"Cross River": {8.5988, 5.8702},
	"Akwa Ibom":   {7.8493, 5.0073},
	"Plateau":     {9.5179, 9.2182},
	"Borno":       {13.1500, 11.8333},
	"Bauchi":      {9.8442, 10.3158},
	"Sokoto":      {5.2476, 13.0533},
	"Niger":       {5.5983, 9.9309},
	"Kogi":        {6.7406, 7.7969},
	"Nassarawa":   {8.3227, 8.5380},
	"Benue":       {8.7404, 7.3369},
	"Taraba":      {10.7740, 7.9994},
	"Adamawa":     {12.3984, 9.3265},
	"Gombe":       {11.1673, 10.2897},
	"Yobe":        {11.4390, 12.2939},
	"Jigawa":      {9.5616, 12.2280},
	"Kebbi":       {4.1975, 12.4539},
	"Zamfara":     {6.2499, 12.1844},
	"Katsina":     {7.6000, 13.0059},
	"Ekiti":       {5.2210, 7.6210},
	"Bayelsa":     {6.0699, 4.7719},
	"Ebonyi":      {8.0137, 6.2649},
}

// Locations is the bootstrap dataset of well-known Nigerian marketplaces.
// IDs and timestamps are assigned at insert time.
var Locations = []entity.Location{
	{
		Name:        "Balogun Market",
		Type:        entity.LocationTypeMarket,
		State:       "Lagos",
		Lga:         "Lagos Island",
		Area:        "Lagos Island",
		Address:     "Breadfruit Street, Lagos Island",
		Description: "One of the largest textile and general goods markets in West Africa.",
		Point:       orb.Point{3.3869, 6.4541},
		IsActive:    true,
	},
	{
		Name:        "Computer Village",
		Type:        entity.LocationTypeMarket,
		State:       "Lagos",
		Lga:         "Ikeja",
		Area:        "Ikeja",
		Address:     "Otigba Street, Ikeja",
		Description: "The largest technology and electronics market in Nigeria.",
		Point:       orb.Point{3.3420, 6.5966},
		IsActive:    true,
	},
	{
		Name:        "Mile 12 Market",
		Type:        entity.LocationTypeMarket,
		State:       "Lagos",
		Lga:         "Kosofe",
		Area:        "Ketu",
		Address:     "Ikorodu Road, Ketu",
		Description: "Major wholesale market for fresh produce and foodstuff.",
		Point:       orb.Point{3.3958, 6.6059},
		IsActive:    true,
	},
	{
		Name:        "Ikeja City Mall",
		Type:        entity.LocationTypeMall,
		State:       "Lagos",
		Lga:         "Ikeja",
		Area:        "Alausa",
		Address:     "Obafemi Awolowo Way, Alausa, Ikeja",
		Description: "Large shopping mall with retail outlets, restaurants and a cinema.",
		Point:       orb.Point{3.3569, 6.6142},
		IsActive:    true,
	},
	{
		Name:        "Wuse Market",
		Type:        entity.LocationTypeMarket,
		State:       "Abuja",
		Lga:         "Abuja Municipal",
		Area:        "Wuse",
		Address:     "Zone 5, Wuse",
		Description: "The principal open market of the federal capital territory.",
		Point:       orb.Point{7.4627, 9.0643},
		IsActive:    true,
	},
	{
		Name:        "Jabi Lake Mall",
		Type:        entity.LocationTypeMall,
		State:       "Abuja",
		Lga:         "Abuja Municipal",
		Area:        "Jabi",
		Address:     "Bala Sokoto Way, Jabi",
		Description: "Waterfront shopping mall beside Jabi Lake.",
		Point:       orb.Point{7.4256, 9.0765},
		IsActive:    true,
	},
	{
		Name:        "Kurmi Market",
		Type:        entity.LocationTypeMarket,
		State:       "Kano",
		Lga:         "Kano Municipal",
		Area:        "Old City",
		Address:     "Kofar Mata Road, Kano",
		Description: "Historic trans-Saharan trade market dating back to the 15th century.",
		Point:       orb.Point{8.5136, 11.9964},
		IsActive:    true,
	},
	{
		Name:        "Onitsha Main Market",
		Type:        entity.LocationTypeMarket,
		State:       "Anambra",
		Lga:         "Onitsha North",
		Area:        "Onitsha",
		Address:     "Bridge Head, Onitsha",
		Description: "Reputed to be the largest market in West Africa by size and volume.",
		Point:       orb.Point{6.7866, 6.1408},
		IsActive:    true,
	},
	{
		Name:        "Ariaria International Market",
		Type:        entity.LocationTypeMarket,
		State:       "Abia",
		Lga:         "Aba North",
		Area:        "Aba",
		Address:     "Faulks Road, Aba",
		Description: "Major leather works and garment manufacturing market.",
		Point:       orb.Point{7.3538, 5.1216},
		IsActive:    true,
	},
	{
		Name:        "Oil Mill Market",
		Type:        entity.LocationTypeMarket,
		State:       "Rivers",
		Lga:         "Obio-Akpor",
		Area:        "Rumuokwurushi",
		Address:     "Aba Road, Port Harcourt",
		Description: "Popular weekly market for foodstuff and general goods.",
		Point:       orb.Point{7.0605, 4.8504},
		IsActive:    true,
	},
	{
		Name:        "Bodija Market",
		Type:        entity.LocationTypeMarket,
		State:       "Oyo",
		Lga:         "Ibadan North",
		Area:        "Bodija",
		Address:     "Bodija, Ibadan",
		Description: "The largest foodstuff market in Ibadan.",
		Point:       orb.Point{3.9094, 7.4339},
		IsActive:    true,
	},
	{
		Name:        "Kanti Kwari Market",
		Type:        entity.LocationTypeMarket,
		State:       "Kano",
		Lga:         "Kano Municipal",
		Area:        "Fagge",
		Address:     "Fagge, Kano",
		Description: "The largest textile market in northern Nigeria.",
		Point:       orb.Point{8.5167, 12.0046},
		IsActive:    true,
	},
	{
		Name:        "Ogbete Main Market",
		Type:        entity.LocationTypeMarket,
		State:       "Enugu",
		Lga:         "Enugu North",
		Area:        "Ogbete",
		Address:     "Market Road, Enugu",
		Description: "The biggest commodity market in Enugu.",
		Point:       orb.Point{7.4898, 6.4403},
		IsActive:    true,
	},
	{
		Name:        "Palms Shopping Mall",
		Type:        entity.LocationTypeMall,
		State:       "Lagos",
		Lga:         "Eti-Osa",
		Area:        "Lekki",
		Address:     "Bisway Street, Maroko, Lekki",
		Description: "One of the first modern shopping malls in Nigeria.",
		Point:       orb.Point{3.4546, 6.4399},
		IsActive:    true,
	},
	{
		Name:        "Gbagi International Market",
		Type:        entity.LocationTypeMarket,
		State:       "Oyo",
		Lga:         "Egbeda",
		Area:        "New Gbagi",
		Address:     "Old Ife Road, Ibadan",
		Description: "Regional hub for textile and fabric trade.",
		Point:       orb.Point{3.9812, 7.3964},
		IsActive:    true,
	},
	{
		Name:        "Oshodi Market",
		Type:        entity.LocationTypeMarket,
		State:       "Lagos",
		Lga:         "Oshodi-Isolo",
		Area:        "Oshodi",
		Address:     "Agege Motor Road, Oshodi",
		Description: "Dense general goods market around the Oshodi interchange.",
		Point:       orb.Point{3.3430, 6.5560},
		IsActive:    true,
	},
	{
		Name:        "Alaba International Market",
		Type:        entity.LocationTypeMarket,
		State:       "Lagos",
		Lga:         "Ojo",
		Area:        "Alaba",
		Address:     "Ojo-Igbede Road, Ojo",
		Description: "Major hub for electronics and electrical equipment.",
		Point:       orb.Point{3.1844, 6.4613},
		IsActive:    true,
	},
	{
		Name:        "Ladipo Market",
		Type:        entity.LocationTypeMarket,
		State:       "Lagos",
		Lga:         "Mushin",
		Area:        "Ladipo",
		Address:     "Ladipo Street, Mushin",
		Description: "The largest auto spare parts market in Lagos.",
		Point:       orb.Point{3.3404, 6.5270},
		IsActive:    true,
	},
	{
		Name:        "Tejuosho Market",
		Type:        entity.LocationTypeMarket,
		State:       "Lagos",
		Lga:         "Lagos Mainland",
		Area:        "Yaba",
		Address:     "Ojuelegba Road, Yaba",
		Description: "Rebuilt multi-storey market for clothing and general goods.",
		Point:       orb.Point{3.3731, 6.5070},
		IsActive:    true,
	},
	{
		Name:        "Idumota Market",
		Type:        entity.LocationTypeMarket,
		State:       "Lagos",
		Lga:         "Lagos Island",
		Area:        "Idumota",
		Address:     "Nnamdi Azikiwe Street, Lagos Island",
		Description: "Wholesale hub for general goods and home video distribution.",
		Point:       orb.Point{3.3850, 6.4570},
		IsActive:    true,
	},
	{
		Name:        "Garki Model Market",
		Type:        entity.LocationTypeMarket,
		State:       "Abuja",
		Lga:         "Abuja Municipal",
		Area:        "Garki",
		Address:     "Ladoke Akintola Boulevard, Garki",
		Description: "Organised multi-section market in the Garki district.",
		Point:       orb.Point{7.4950, 9.0290},
		IsActive:    true,
	},
	{
		Name:        "Utako Market",
		Type:        entity.LocationTypeMarket,
		State:       "Abuja",
		Lga:         "Abuja Municipal",
		Area:        "Utako",
		Address:     "A.E. Ekukinam Street, Utako",
		Description: "Popular foodstuff and household goods market.",
		Point:       orb.Point{7.4432, 9.0679},
		IsActive:    true,
	},
	{
		Name:        "Sabon Gari Market",
		Type:        entity.LocationTypeMarket,
		State:       "Kano",
		Lga:         "Fagge",
		Area:        "Sabon Gari",
		Address:     "Sabon Gari, Kano",
		Description: "Large general goods market in the Sabon Gari quarter.",
		Point:       orb.Point{8.5310, 12.0100},
		IsActive:    true,
	},
	{
		Name:        "Dawanau International Grain Market",
		Type:        entity.LocationTypeMarket,
		State:       "Kano",
		Lga:         "Dawakin Tofa",
		Area:        "Dawanau",
		Address:     "Katsina Road, Dawanau",
		Description: "Reputed to be the largest grain market in West Africa.",
		Point:       orb.Point{8.4200, 12.1050},
		IsActive:    true,
	},
	{
		Name:        "Kaduna Central Market",
		Type:        entity.LocationTypeMarket,
		State:       "Kaduna",
		Lga:         "Kaduna North",
		Area:        "City Centre",
		Address:     "Ahmadu Bello Way, Kaduna",
		Description: "The principal market of Kaduna city.",
		Point:       orb.Point{7.4370, 10.5230},
		IsActive:    true,
	},
	{
		Name:        "Mile 1 Market",
		Type:        entity.LocationTypeMarket,
		State:       "Rivers",
		Lga:         "Port Harcourt",
		Area:        "Diobu",
		Address:     "Ikwerre Road, Diobu",
		Description: "Busy general goods market in the Diobu area of Port Harcourt.",
		Point:       orb.Point{6.9980, 4.7890},
		IsActive:    true,
	},
	{
		Name:        "Port Harcourt Mall",
		Type:        entity.LocationTypeMall,
		State:       "Rivers",
		Lga:         "Port Harcourt",
		Area:        "Old GRA",
		Address:     "Azikiwe Road, Port Harcourt",
		Description: "Modern shopping mall in central Port Harcourt.",
		Point:       orb.Point{7.0040, 4.7990},
		IsActive:    true,
	},
	{
		Name:        "Dugbe Market",
		Type:        entity.LocationTypeMarket,
		State:       "Oyo",
		Lga:         "Ibadan North-West",
		Area:        "Dugbe",
		Address:     "Dugbe, Ibadan",
		Description: "Commercial centre of Ibadan for general merchandise.",
		Point:       orb.Point{3.8780, 7.3860},
		IsActive:    true,
	},
	{
		Name:        "Oja'ba Market",
		Type:        entity.LocationTypeMarket,
		State:       "Oyo",
		Lga:         "Ibadan South-East",
		Area:        "Oja'ba",
		Address:     "Oja'ba, Ibadan",
		Description: "Historic king's market in the old city of Ibadan.",
		Point:       orb.Point{3.8910, 7.3650},
		IsActive:    true,
	},
	{
		Name:        "Ochanja Market",
		Type:        entity.LocationTypeMarket,
		State:       "Anambra",
		Lga:         "Onitsha South",
		Area:        "Odoakpu",
		Address:     "Port Harcourt Road, Onitsha",
		Description: "Second-largest market in Onitsha after the Main Market.",
		Point:       orb.Point{6.7850, 6.1330},
		IsActive:    true,
	},
	{
		Name:        "Nkwo Nnewi Market",
		Type:        entity.LocationTypeMarket,
		State:       "Anambra",
		Lga:         "Nnewi North",
		Area:        "Nnewi",
		Address:     "Nkwo Triangle, Nnewi",
		Description: "Major motorcycle and auto spare parts market.",
		Point:       orb.Point{6.9100, 6.0200},
		IsActive:    true,
	},
	{
		Name:        "Ahia Ohuru",
		Type:        entity.LocationTypeMarket,
		State:       "Abia",
		Lga:         "Aba South",
		Area:        "Aba",
		Address:     "New Road, Aba",
		Description: "Foodstuff and general goods market, also called the New Market.",
		Point:       orb.Point{7.3660, 5.1060},
		IsActive:    true,
	},
	{
		Name:        "Oba Market",
		Type:        entity.LocationTypeMarket,
		State:       "Edo",
		Lga:         "Oredo",
		Area:        "Ring Road",
		Address:     "Ring Road, Benin City",
		Description: "Central market of Benin City beside the Oba's palace.",
		Point:       orb.Point{5.6200, 6.3350},
		IsActive:    true,
	},
	{
		Name:        "Ogbogonogo Market",
		Type:        entity.LocationTypeMarket,
		State:       "Delta",
		Lga:         "Oshimili South",
		Area:        "Asaba",
		Address:     "Nnebisi Road, Asaba",
		Description: "The main daily market of Asaba.",
		Point:       orb.Point{6.7290, 6.1980},
		IsActive:    true,
	},
	{
		Name:        "Ekeonunwa Market",
		Type:        entity.LocationTypeMarket,
		State:       "Imo",
		Lga:         "Owerri Municipal",
		Area:        "Owerri",
		Address:     "Ekeonunwa Street, Owerri",
		Description: "Central relief market of Owerri.",
		Point:       orb.Point{7.0320, 5.4850},
		IsActive:    true,
	},
	{
		Name:        "Oja Oba Market",
		Type:        entity.LocationTypeMarket,
		State:       "Kwara",
		Lga:         "Ilorin West",
		Area:        "Ilorin",
		Address:     "Emir's Road, Ilorin",
		Description: "Historic central market of Ilorin near the Emir's palace.",
		Point:       orb.Point{4.5480, 8.4930},
		IsActive:    true,
	},
	{
		Name:        "Erekesan Market",
		Type:        entity.LocationTypeMarket,
		State:       "Ondo",
		Lga:         "Akure South",
		Area:        "Akure",
		Address:     "Oba Adesida Road, Akure",
		Description: "King's market in the centre of Akure.",
		Point:       orb.Point{5.1930, 7.2510},
		IsActive:    true,
	},
	{
		Name:        "Kuto Market",
		Type:        entity.LocationTypeMarket,
		State:       "Ogun",
		Lga:         "Abeokuta South",
		Area:        "Kuto",
		Address:     "Kuto, Abeokuta",
		Description: "Principal foodstuff market of Abeokuta.",
		Point:       orb.Point{3.3460, 7.1440},
		IsActive:    true,
	},
	{
		Name:        "Jos Main Market",
		Type:        entity.LocationTypeMarket,
		State:       "Plateau",
		Lga:         "Jos North",
		Area:        "Terminus",
		Address:     "Ahmadu Bello Way, Jos",
		Description: "Central market of Jos around the old Terminus building.",
		Point:       orb.Point{8.8900, 9.9260},
		IsActive:    true,
	},
	{
		Name:        "Monday Market",
		Type:        entity.LocationTypeMarket,
		State:       "Borno",
		Lga:         "Maiduguri",
		Area:        "Maiduguri",
		Address:     "Baga Road, Maiduguri",
		Description: "The largest market in Maiduguri.",
		Point:       orb.Point{13.1560, 11.8430},
		IsActive:    true,
	},
	{
		Name:        "Sokoto Central Market",
		Type:        entity.LocationTypeMarket,
		State:       "Sokoto",
		Lga:         "Sokoto North",
		Area:        "Sokoto",
		Address:     "Kano Road, Sokoto",
		Description: "Main market of Sokoto city.",
		Point:       orb.Point{5.2400, 13.0650},
		IsActive:    true,
	},
	{
		Name:        "Katsina Central Market",
		Type:        entity.LocationTypeMarket,
		State:       "Katsina",
		Lga:         "Katsina",
		Area:        "Katsina",
		Address:     "IBB Way, Katsina",
		Description: "Principal market of Katsina city.",
		Point:       orb.Point{7.6010, 12.9890},
		IsActive:    true,
	},
	{
		Name:        "Muda Lawal Market",
		Type:        entity.LocationTypeMarket,
		State:       "Bauchi",
		Lga:         "Bauchi",
		Area:        "Bauchi",
		Address:     "Muda Lawal, Bauchi",
		Description: "The biggest foodstuff market in Bauchi state.",
		Point:       orb.Point{9.8380, 10.3080},
		IsActive:    true,
	},
	{
		Name:        "Makurdi Modern Market",
		Type:        entity.LocationTypeMarket,
		State:       "Benue",
		Lga:         "Makurdi",
		Area:        "High Level",
		Address:     "Railway Bypass, Makurdi",
		Description: "Main market of Makurdi for yams and foodstuff.",
		Point:       orb.Point{8.5300, 7.7270},
		IsActive:    true,
	},
	{
		Name:        "Kure Ultra-Modern Market",
		Type:        entity.LocationTypeMarket,
		State:       "Niger",
		Lga:         "Chanchaga",
		Area:        "Minna",
		Address:     "Bosso Road, Minna",
		Description: "Central market of Minna.",
		Point:       orb.Point{6.5530, 9.6060},
		IsActive:    true,
	},
	{
		Name:        "Watt Market",
		Type:        entity.LocationTypeMarket,
		State:       "Cross River",
		Lga:         "Calabar Municipal",
		Area:        "Calabar",
		Address:     "Watt Market Road, Calabar",
		Description: "Oldest and largest market in Calabar.",
		Point:       orb.Point{8.3180, 4.9530},
		IsActive:    true,
	},
	{
		Name:        "Akpan Andem Market",
		Type:        entity.LocationTypeMarket,
		State:       "Akwa Ibom",
		Lga:         "Uyo",
		Area:        "Uyo",
		Address:     "Udo Street, Uyo",
		Description: "Major general goods market in Uyo.",
		Point:       orb.Point{7.9210, 5.0330},
		IsActive:    true,
	},
	{
		Name:        "Swali Market",
		Type:        entity.LocationTypeMarket,
		State:       "Bayelsa",
		Lga:         "Yenagoa",
		Area:        "Swali",
		Address:     "Swali Waterfront, Yenagoa",
		Description: "Riverside market serving Yenagoa and the creeks.",
		Point:       orb.Point{6.2600, 4.9260},
		IsActive:    true,
	},
	{
		Name:        "Abakpa Main Market",
		Type:        entity.LocationTypeMarket,
		State:       "Ebonyi",
		Lga:         "Abakaliki",
		Area:        "Abakpa",
		Address:     "Ogoja Road, Abakaliki",
		Description: "The largest market in Abakaliki.",
		Point:       orb.Point{8.1140, 6.3240},
		IsActive:    true,
	},
	{
		Name:        "Lafia Modern Market",
		Type:        entity.LocationTypeMarket,
		State:       "Nassarawa",
		Lga:         "Lafia",
		Area:        "Lafia",
		Address:     "Jos Road, Lafia",
		Description: "Principal market of the state capital.",
		Point:       orb.Point{8.5200, 8.4900},
		IsActive:    true,
	},
}
