package geoserver

// bootstrapPage triggers the browser geolocation prompt on load and posts the
// resolved coordinates back to the callback path. Errors (denied permission,
// timeout, unsupported browser) are shown in-page and never reach the server.
//
// The fetch target below must match CallbackPath.
const bootstrapPage = `<!DOCTYPE html>
<html>
<head>
    <title>Location Handshake</title>
</head>
<body onload="getLocation()">
    <h1>Location Status:</h1>
    <p id="status_message">Attempting to get location... (Please click 'Allow')</p>

    <script>
        function getLocation() {
            if (navigator.geolocation) {
                navigator.geolocation.getCurrentPosition(sendLocation, handleError, {enableHighAccuracy: true, timeout: 10000});
            } else {
                document.getElementById('status_message').innerText = "Geolocation is not supported by this browser.";
            }
        }

        function sendLocation(position) {
            const lat = position.coords.latitude;
            const lon = position.coords.longitude;

            document.getElementById('status_message').innerText = 'Location found! Lat: ' + lat + ', Lon: ' + lon + '. Sending...';

            fetch('/location_data', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ latitude: lat, longitude: lon }),
            })
            .then(() => {
                document.getElementById('status_message').innerText += '\nServer acknowledged. You can close this window.';
            })
            .catch((error) => {
                document.getElementById('status_message').innerText += '\nError sending location: ' + error;
            });
        }

        function handleError(error) {
            let msg = "Error occurred.";
            if (error.code === error.PERMISSION_DENIED) msg = "User denied location permission.";
            else if (error.code === error.TIMEOUT) msg = "Location request timed out.";
            document.getElementById('status_message').innerText = 'Error: ' + msg;
        }
    </script>
</body>
</html>
`
