package mysql

// The catalog tables are an immutable snapshot per process run; the source
// only ever reads them. id ordering keeps repeated loads deterministic.

const selectFlightsSQL = `
SELECT id, origin, destination, airline, departure_time, arrival_time, price
FROM flights
ORDER BY id`

const selectHotelsSQL = `
SELECT id, city, name, stars, price_per_night, amenities
FROM hotels
ORDER BY id`

const selectPlacesSQL = `
SELECT id, city, name, type, entry_fee, rating
FROM places
ORDER BY id`
