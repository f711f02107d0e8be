// internal/catalog/data.go
package catalog

// Raw template text blocks. Each block is two CSV sections separated by a
// blank line: a single-row trip metadata section and a per-day activities
// section. The set of day numbers in each block must cover 1..days; Verify
// flags violations at startup.

const rawKashmir = `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
Kashmir Valley Escape,3,2,2025-08-11,45000,540,4,2,2

day,time,activity,type,description
1,08:00 AM,Breakfast,meal,Kahwa and breakfast on the houseboat deck
1,10:00 AM,Shikara ride on Dal Lake,sightseeing,Glide past floating gardens and the Char Chinar island
1,01:00 PM,Lunch,meal,Wazwan lunch at a lakeside restaurant
1,04:00 PM,Mughal Gardens walk,sightseeing,Nishat Bagh and Shalimar Bagh terraces
1,08:00 PM,Dinner,meal,Dinner served aboard the houseboat
2,07:30 AM,Breakfast,meal,Early breakfast before the mountain drive
2,09:00 AM,Transfer to Gulmarg,transfer,Scenic drive through Tangmarg pine forests
2,11:30 AM,Gulmarg Gondola ride,adventure,Cable car to Kongdoori station
2,02:00 PM,Lunch,meal,Lunch at a Gulmarg meadow cafe
2,04:00 PM,Pony trail to Khilanmarg,adventure,Guided pony ride on the alpine trail
2,07:00 PM,Return transfer to Srinagar,transfer,Evening drive back to the houseboat
3,08:00 AM,Breakfast,meal,Breakfast with Dal Lake views
3,10:00 AM,Old Srinagar heritage walk,sightseeing,Jamia Masjid and the spice bazaar lanes
3,01:00 PM,Lunch,meal,Farewell lunch in the old city
3,03:30 PM,Airport departure transfer,transfer,Private transfer to Srinagar airport`

const rawGoa = `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
Goa Beach Getaway,4,3,2025-09-05,38000,455,2,2,0

day,time,activity,type,description
1,12:00 PM,Airport pickup,transfer,Private transfer from Dabolim airport
1,02:00 PM,Lunch,meal,Beach shack lunch at Candolim
1,04:30 PM,Calangute beach time,activity,Sunbeds and water on the main stretch
1,08:00 PM,Dinner,meal,Seafood dinner at Baga
2,09:00 AM,Breakfast,meal,Breakfast at the resort
2,10:30 AM,North Goa sightseeing,sightseeing,Fort Aguada and the Chapora viewpoint
2,01:30 PM,Lunch,meal,Goan thali in Anjuna
2,03:30 PM,Parasailing at Baga,adventure,Tandem parasailing with certified operators
2,07:30 PM,Saturday night market,activity,Arpora market stalls and live music
3,09:00 AM,Breakfast,meal,Breakfast at the resort
3,10:30 AM,Old Goa churches,sightseeing,Basilica of Bom Jesus and Se Cathedral
3,01:00 PM,Lunch,meal,Riverside lunch in Panjim
3,03:00 PM,Mandovi river cruise,activity,Sunset cruise with cultural performances
3,08:00 PM,Dinner,meal,Fontainhas quarter dinner walk
4,09:00 AM,Breakfast,meal,Leisurely checkout breakfast
4,11:00 AM,Souvenir shopping,activity,Cashew and spice shopping stop
4,01:00 PM,Airport departure transfer,transfer,Private transfer to Dabolim airport`

const rawKerala = `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
Kerala Backwaters Retreat,5,4,2025-10-02,62000,745,4,2,2

day,time,activity,type,description
1,11:00 AM,Airport pickup,transfer,Private transfer from Kochi airport
1,01:00 PM,Lunch,meal,Kerala sadya lunch in Fort Kochi
1,03:30 PM,Fort Kochi walk,sightseeing,Chinese fishing nets and the Dutch Palace
1,06:30 PM,Kathakali performance,activity,Evening show at the cultural centre
2,08:00 AM,Breakfast,meal,Breakfast at the heritage hotel
2,09:30 AM,Transfer to Munnar,transfer,Hill drive with waterfall stops
2,01:30 PM,Lunch,meal,Lunch at a plantation bungalow
2,03:30 PM,Tea estate tour,sightseeing,Guided walk through the tea gardens
3,07:30 AM,Breakfast,meal,Sunrise breakfast at Munnar
3,09:00 AM,Eravikulam National Park,sightseeing,Nilgiri tahr viewing on the high slopes
3,01:00 PM,Lunch,meal,Local lunch near Mattupetty dam
3,03:30 PM,Spice garden visit,activity,Cardamom and pepper plantation tour
4,08:00 AM,Breakfast,meal,Breakfast before the descent
4,09:30 AM,Transfer to Alleppey,transfer,Drive down to the backwater jetty
4,12:30 PM,Houseboat check-in,activity,Board a traditional kettuvallam
4,01:30 PM,Lunch,meal,Karimeen lunch cooked on board
4,05:00 PM,Backwater cruise,sightseeing,Village canals and paddy field channels
5,08:00 AM,Breakfast,meal,Breakfast on the backwaters
5,10:00 AM,Houseboat checkout,activity,Disembark at the Alleppey jetty
5,12:30 PM,Airport departure transfer,transfer,Transfer back to Kochi airport`

const rawRajasthan = `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
Rajasthan Royal Circuit,6,5,2025-11-10,78000,935,2,2,0

day,time,activity,type,description
1,10:00 AM,Airport pickup,transfer,Private transfer from Jaipur airport
1,12:30 PM,Lunch,meal,Rooftop lunch facing Hawa Mahal
1,02:30 PM,City Palace tour,sightseeing,Museums and courtyards of the royal residence
1,06:00 PM,Bazaar walk,activity,Johari Bazaar gem and textile lanes
2,08:00 AM,Breakfast,meal,Breakfast at the haveli
2,09:30 AM,Amber Fort excursion,sightseeing,Ramparts and the Sheesh Mahal
2,01:00 PM,Lunch,meal,Traditional thali near Jal Mahal
2,04:00 PM,Block printing workshop,activity,Hands-on session with Sanganer artisans
3,07:30 AM,Breakfast,meal,Early breakfast before the highway drive
3,08:30 AM,Transfer to Jodhpur,transfer,Drive across the Aravalli plains
3,01:30 PM,Lunch,meal,Lunch in the old blue city
3,03:30 PM,Mehrangarh Fort,sightseeing,Clifftop fort and palace museum
4,08:00 AM,Breakfast,meal,Breakfast overlooking the fort
4,09:30 AM,Transfer to Jaisalmer,transfer,Desert highway drive
4,02:00 PM,Lunch,meal,Lunch inside the living fort
4,04:30 PM,Patwon ki Haveli,sightseeing,Carved sandstone merchant mansions
5,08:00 AM,Breakfast,meal,Breakfast at the desert camp
5,10:00 AM,Sam dunes camel safari,adventure,Camel ride over the Thar dunes
5,01:00 PM,Lunch,meal,Camp lunch under the shade tents
5,05:00 PM,Sunset dune point,sightseeing,Golden hour over the dunes
5,08:00 PM,Folk night dinner,meal,Kalbeliya dance and dinner at the camp
6,08:00 AM,Breakfast,meal,Final camp breakfast
6,10:00 AM,Airport departure transfer,transfer,Transfer to Jaisalmer airport`

const rawHimachal = `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
Himachal Mountain Trail,4,3,2025-06-20,41000,490,3,2,1

day,time,activity,type,description
1,09:00 AM,Pickup at Chandigarh,transfer,Drive up the Kalka-Shimla highway
1,01:30 PM,Lunch,meal,Lunch stop at a hill dhaba
1,04:30 PM,Mall Road walk,activity,Evening stroll on the Shimla ridge
1,08:00 PM,Dinner,meal,Dinner at the heritage lodge
2,08:00 AM,Breakfast,meal,Mountain view breakfast
2,09:30 AM,Transfer to Manali,transfer,Drive along the Beas river valley
2,02:00 PM,Lunch,meal,Riverside trout lunch at Kullu
2,05:30 PM,Old Manali cafes,activity,Browse the Manu temple lanes
3,07:00 AM,Breakfast,meal,Early breakfast for the pass
3,08:30 AM,Solang Valley ropeway,adventure,Cable car and zorbing at Solang
3,01:00 PM,Lunch,meal,Packed lunch in the valley
3,03:00 PM,Hadimba temple visit,sightseeing,Cedar forest pagoda temple
3,07:30 PM,Dinner,meal,Himachali dham dinner
4,08:30 AM,Breakfast,meal,Checkout breakfast
4,10:00 AM,Vashisht hot springs,activity,Morning dip at the spring baths
4,12:30 PM,Departure transfer,transfer,Drive back towards Chandigarh`

// BuiltinTemplates returns the fixed catalog shipped with the binary, keyed
// by template identifier.
func BuiltinTemplates() map[string]string {
	return map[string]string{
		"KASH001": rawKashmir,
		"GOA001":  rawGoa,
		"KERL001": rawKerala,
		"RAJA001": rawRajasthan,
		"HIMA001": rawHimachal,
	}
}
