package registers

// Group A, standard functions (datasheet sections 3-5 and B-4).
var (
	A001 = Register{0x1201, 1} // Frequency reference selection
	A002 = Register{0x1202, 1} // Run command selection
	A003 = Register{0x1203, 1} // Base frequency
	A004 = Register{0x1204, 1} // Maximum frequency
	A005 = Register{0x1205, 1} // Voltage/current input selection
	A011 = Register{0x120B, 2} // Voltage input start frequency
	A012 = Register{0x120D, 2} // Voltage input end frequency
	A013 = Register{0x120F, 1} // Voltage input start ratio
	A014 = Register{0x1210, 1} // Voltage input end ratio
	A015 = Register{0x1211, 1} // Voltage input start selection
	A016 = Register{0x1212, 1} // External frequency filter time constant
	A017 = Register{0x1213, 1} // Drive programming selection
	A019 = Register{0x1215, 1} // Multi-step speed selection
	A020 = Register{0x1216, 2} // Multi-step speed reference 0
	A021 = Register{0x1218, 2} // Multi-step speed reference 1
	A022 = Register{0x121A, 2} // Multi-step speed reference 2
	A023 = Register{0x121C, 2} // Multi-step speed reference 3
	A024 = Register{0x121E, 2} // Multi-step speed reference 4
	A025 = Register{0x1220, 2} // Multi-step speed reference 5
	A026 = Register{0x1222, 2} // Multi-step speed reference 6
	A027 = Register{0x1224, 2} // Multi-step speed reference 7
	A028 = Register{0x1226, 2} // Multi-step speed reference 8
	A029 = Register{0x1228, 2} // Multi-step speed reference 9
	A030 = Register{0x122A, 2} // Multi-step speed reference 10
	A031 = Register{0x122C, 2} // Multi-step speed reference 11
	A032 = Register{0x122E, 2} // Multi-step speed reference 12
	A033 = Register{0x1230, 2} // Multi-step speed reference 13
	A034 = Register{0x1232, 2} // Multi-step speed reference 14
	A035 = Register{0x1234, 2} // Multi-step speed reference 15
	A038 = Register{0x1238, 1} // Jogging frequency
	A039 = Register{0x1239, 1} // Jogging stop selection
	A041 = Register{0x123B, 1} // Torque boost selection
	A042 = Register{0x123C, 1} // Manual torque boost voltage
	A043 = Register{0x123D, 1} // Manual torque boost frequency
	A044 = Register{0x123E, 1} // V/f characteristics selection
	A045 = Register{0x123F, 1} // Output voltage gain
	A046 = Register{0x1240, 1} // Automatic torque boost voltage compensation gain
	A047 = Register{0x1241, 1} // Automatic torque boost slip compensation gain
	A051 = Register{0x1245, 1} // DC injection braking enable
	A052 = Register{0x1246, 1} // DC injection braking frequency
	A053 = Register{0x1247, 1} // DC injection braking delay time
	A054 = Register{0x1248, 1} // DC injection braking power
	A055 = Register{0x1249, 1} // DC injection braking time
	A056 = Register{0x124A, 1} // DC injection braking method selection
	A057 = Register{0x124B, 1} // Startup DC injection braking power
	A058 = Register{0x124C, 1} // Startup DC injection braking time
	A059 = Register{0x124D, 1} // DC injection braking carrier frequency
	A061 = Register{0x124F, 2} // Frequency upper limit
	A062 = Register{0x1251, 2} // Frequency lower limit
	A063 = Register{0x1253, 2} // Jump frequency 1
	A064 = Register{0x1255, 1} // Jump frequency width 1
	A065 = Register{0x1256, 2} // Jump frequency 2
	A066 = Register{0x1258, 1} // Jump frequency width 2
	A067 = Register{0x1259, 2} // Jump frequency 3
	A068 = Register{0x125B, 1} // Jump frequency width 3
	A069 = Register{0x125C, 2} // Acceleration stop frequency
	A070 = Register{0x125E, 1} // Acceleration stop time
	A071 = Register{0x125F, 1} // PID selection
	A072 = Register{0x1260, 1} // PID P gain
	A073 = Register{0x1261, 1} // PID I gain
	A074 = Register{0x1262, 1} // PID D gain
	A075 = Register{0x1263, 1} // PID scale
	A076 = Register{0x1264, 1} // PID feedback selection
	A077 = Register{0x1265, 1} // Reverse PID function
	A078 = Register{0x1266, 1} // PID output limit function
	A079 = Register{0x1267, 1} // PID feed-forward selection
	A081 = Register{0x1269, 1} // AVR selection
	A082 = Register{0x126A, 1} // AVR voltage selection
	A083 = Register{0x126B, 1} // AVR filter time constant
	A084 = Register{0x126C, 1} // AVR deceleration gain
	A085 = Register{0x126D, 1} // Energy saving operation mode
	A086 = Register{0x126E, 1} // Energy saving response/accuracy adjustment
	A092 = Register{0x1274, 2} // Acceleration time 2
	A093 = Register{0x1276, 2} // Deceleration time 2
	A094 = Register{0x1278, 1} // Method to switch to Acc2/Dec2
	A095 = Register{0x1279, 2} // Acc1 to Acc2 frequency transition point
	A096 = Register{0x127B, 2} // Dec1 to Dec2 frequency transition point
	A097 = Register{0x127D, 1} // Acceleration curve selection
	A098 = Register{0x127E, 1} // Deceleration curve selection
	A101 = Register{0x1281, 2} // Current input active range start frequency
	A102 = Register{0x1283, 2} // Current input active range end frequency
	A103 = Register{0x1285, 1} // Current input active range start ratio
	A104 = Register{0x1286, 1} // Current input active range end ratio
	A105 = Register{0x1287, 1} // Current input start frequency enable
	A131 = Register{0x12A5, 1} // Acceleration curve parameter
	A132 = Register{0x12A6, 1} // Deceleration curve parameter
	A141 = Register{0x12AF, 1} // Operation frequency input A selection
	A142 = Register{0x12B0, 1} // Operation frequency input B selection
	A143 = Register{0x12B1, 1} // Operation selection
	A145 = Register{0x12B3, 2} // Frequency addition amount
	A146 = Register{0x12B5, 1} // Frequency addition direction
	A150 = Register{0x12B9, 1} // ELS curve ratio 1 during acceleration
	A151 = Register{0x12BA, 1} // ELS curve ratio 2 during acceleration
	A152 = Register{0x12BB, 1} // ELS curve ratio 1 during deceleration
	A153 = Register{0x12BC, 1} // ELS curve ratio 2 during deceleration
	A154 = Register{0x12BD, 2} // Deceleration hold frequency
	A155 = Register{0x12BF, 1} // Deceleration hold time
	A156 = Register{0x12C0, 2} // PID sleep function action threshold
	A157 = Register{0x12C2, 1} // PID sleep function action delay time
	A161 = Register{0x12C6, 2} // VR input active range start frequency
	A162 = Register{0x12C8, 2} // VR input active range end frequency
	A163 = Register{0x12CA, 1} // VR input active range start current
	A164 = Register{0x12CB, 1} // VR input active range end voltage
	A165 = Register{0x12CC, 1} // VR input start frequency enable
)

// Group B, fine tuning functions (datasheet sections 3-6 and B-4).
var (
	B001 = Register{0x1301, 1} // Retry selection
	B002 = Register{0x1302, 1} // Allowable momentary power interruption time
	B003 = Register{0x1303, 1} // Retry wait time
	B004 = Register{0x1304, 1} // Undervoltage trip during stop selection
	B005 = Register{0x1305, 1} // Momentary power interruption retry time selection
	B007 = Register{0x1307, 2} // Frequency matching lower limit
	B008 = Register{0x1309, 1} // Trip retry selection
	B010 = Register{0x130B, 1} // Overvoltage retry time selection
	B011 = Register{0x130C, 1} // Trip retry wait time
	B012 = Register{0x130D, 1} // Electronic thermal level
	B013 = Register{0x130E, 1} // Electronic thermal characteristics selection
	B015 = Register{0x1310, 1} // Electronic thermal frequency 1
	B016 = Register{0x1311, 1} // Electronic thermal current 1
	B017 = Register{0x1312, 1} // Electronic thermal frequency 2
	B018 = Register{0x1313, 1} // Electronic thermal current 2
	B019 = Register{0x1314, 1} // Electronic thermal frequency 3
	B020 = Register{0x1315, 1} // Electronic thermal current 3
	B021 = Register{0x1316, 1} // Overload limit selection
	B022 = Register{0x1317, 1} // Overload limit level
	B023 = Register{0x1318, 1} // Overload limit parameter
	B024 = Register{0x1319, 1} // Overload limit selection 2
	B025 = Register{0x131A, 1} // Overload limit level 2
	B026 = Register{0x131B, 1} // Overload limit parameter 2
	B027 = Register{0x131C, 1} // Overcurrent suppression function
	B028 = Register{0x131D, 1} // Active frequency matching restart level
	B029 = Register{0x131E, 1} // Active frequency matching restart parameter
	B030 = Register{0x131F, 1} // Starting frequency at active frequency matching restart
	B031 = Register{0x1320, 1} // Soft lock selection
	B033 = Register{0x1322, 1} // Motor cable length parameter
	B034 = Register{0x1323, 2} // Power-on time setting
	B035 = Register{0x1325, 1} // Rotation direction limit selection
	B036 = Register{0x1326, 1} // Reduced voltage startup selection
	B037 = Register{0x1327, 1} // Display selection
	B038 = Register{0x1328, 1} // Initial screen selection
	B039 = Register{0x1329, 1} // User parameter automatic setting function selection
	B040 = Register{0x132A, 1} // Torque limit selection
	B041 = Register{0x132B, 1} // Torque limit 1
	B042 = Register{0x132C, 1} // Torque limit 2
	B043 = Register{0x132D, 1} // Torque limit 3
	B044 = Register{0x132E, 1} // Torque limit 4
	B045 = Register{0x132F, 1} // Torque LADSTOP selection
	B046 = Register{0x1330, 1} // Reverse rotation prevention selection
	B049 = Register{0x1333, 1} // Dual rate selection
	B050 = Register{0x1334, 1} // Non-stop function on power interruption selection
	B051 = Register{0x1335, 1} // Starting voltage of non-stop function
	B052 = Register{0x1336, 1} // Stop deceleration level of non-stop function
	B053 = Register{0x1337, 2} // Deceleration time of non-stop function
	B054 = Register{0x1339, 1} // Deceleration starting width of non-stop function
	B060 = Register{0x133F, 1} // Window comparator upper voltage level
	B061 = Register{0x1340, 1} // Window comparator lower voltage level
	B062 = Register{0x1341, 1} // Window comparator voltage hysteresis width
	B063 = Register{0x1342, 1} // Window comparator upper current level
	B064 = Register{0x1343, 1} // Window comparator lower current level
	B065 = Register{0x1344, 1} // Window comparator current hysteresis width
	B070 = Register{0x1349, 1} // Analog voltage level at disconnection
	B071 = Register{0x134A, 1} // Analog current level at disconnection
	B075 = Register{0x134E, 1} // Ambient temperature
	B078 = Register{0x1351, 1} // Integrated power clear
	B079 = Register{0x1352, 1} // Integrated power display gain
	B082 = Register{0x1355, 1} // Starting frequency
	B083 = Register{0x1356, 1} // Carrier frequency
	B084 = Register{0x1357, 1} // Initialization selection
	B085 = Register{0x1358, 1} // Initialization parameter selection
	B086 = Register{0x1359, 1} // Frequency conversion coefficient
	B087 = Register{0x135A, 1} // Stop key selection
	B088 = Register{0x135B, 1} // Free-run stop selection
	B089 = Register{0x135C, 1} // Automatic carrier frequency reduction
	B090 = Register{0x135D, 1} // Rate of regenerative braking function
	B091 = Register{0x135E, 1} // Stop selection
	B092 = Register{0x135F, 1} // Cooling fan control
	B093 = Register{0x1360, 1} // Clear elapsed time of cooling fan
	B094 = Register{0x1361, 1} // Initialization target data
	B095 = Register{0x1362, 1} // Regenerative braking operation
	B096 = Register{0x1363, 1} // Regenerative braking ON level
	B097 = Register{0x1364, 1} // BRD resistor
	B100 = Register{0x1367, 1} // Free V/f frequency 1
	B101 = Register{0x1368, 1} // Free V/f voltage 1
	B102 = Register{0x1369, 1} // Free V/f frequency 2
	B103 = Register{0x136A, 1} // Free V/f voltage 2
	B104 = Register{0x136B, 1} // Free V/f frequency 3
	B105 = Register{0x136C, 1} // Free V/f voltage 3
	B106 = Register{0x136D, 1} // Free V/f frequency 4
	B107 = Register{0x136E, 1} // Free V/f voltage 4
	B108 = Register{0x136F, 1} // Free V/f frequency 5
	B109 = Register{0x1370, 1} // Free V/f voltage 5
	B110 = Register{0x1371, 1} // Free V/f frequency 6
	B111 = Register{0x1372, 1} // Free V/f voltage 6
	B112 = Register{0x1373, 1} // Free V/f frequency 7
	B113 = Register{0x1374, 1} // Free V/f voltage 7
	B120 = Register{0x137B, 1} // Brake control selection
	B121 = Register{0x137C, 1} // Brake wait time for release
	B122 = Register{0x137D, 1} // Brake wait time for acceleration
	B123 = Register{0x137E, 1} // Brake wait time for stopping
	B124 = Register{0x137F, 1} // Brake wait time for confirmation
	B125 = Register{0x1380, 1} // Brake release frequency
	B126 = Register{0x1381, 1} // Brake release current
	B127 = Register{0x1382, 1} // Brake input frequency
	B130 = Register{0x1385, 1} // Overvoltage protection during deceleration
	B131 = Register{0x1386, 1} // Overvoltage protection level during deceleration
	B132 = Register{0x1387, 1} // Overvoltage protection parameter
	B133 = Register{0x1388, 1} // Overvoltage protection proportional gain
	B134 = Register{0x1389, 1} // Overvoltage protection integral gain
	B145 = Register{0x1394, 1} // GS input mode
	B150 = Register{0x139A, 1} // Display external operator connected
	B160 = Register{0x13A3, 1} // First dual monitor parameter
	B161 = Register{0x13A4, 1} // Second dual monitor parameter
	B163 = Register{0x13A6, 1} // Frequency set in monitoring
	B164 = Register{0x13A7, 1} // Auto-return initial display
	B165 = Register{0x13A8, 1} // External operator disconnection action
	B166 = Register{0x13A9, 1} // Data read/write selection
	B171 = Register{0x13AE, 1} // Inverter mode selection
	B180 = Register{0x13B7, 1} // Initialize trigger
	B910 = Register{0x13C6, 1} // Thermal decrement mode
	B911 = Register{0x13C7, 2} // Thermal decrement time
	B912 = Register{0x13C9, 2} // Thermal decrement time constant
	B913 = Register{0x13CB, 1} // Thermal accumulator gain
)

// Group C, intelligent terminal functions (datasheet sections 3-7 and B-4).
var (
	C001 = Register{0x1401, 1} // Multi-function input 1 function
	C002 = Register{0x1402, 1} // Multi-function input 2 function
	C003 = Register{0x1403, 1} // Multi-function input 3 function
	C004 = Register{0x1404, 1} // Multi-function input 4 function
	C005 = Register{0x1405, 1} // Multi-function input 5 function
	C006 = Register{0x1406, 1} // Multi-function input 6 function
	C007 = Register{0x1407, 1} // Multi-function input 7 function
	C011 = Register{0x140B, 1} // Multi-function input 1 type
	C012 = Register{0x140C, 1} // Multi-function input 2 type
	C013 = Register{0x140D, 1} // Multi-function input 3 type
	C014 = Register{0x140E, 1} // Multi-function input 4 type
	C015 = Register{0x140F, 1} // Multi-function input 5 type
	C016 = Register{0x1410, 1} // Multi-function input 6 type
	C017 = Register{0x1411, 1} // Multi-function input 7 type
	C021 = Register{0x1415, 1} // Multi-function output 11 function
	C022 = Register{0x1416, 1} // Multi-function output 12 function
	C026 = Register{0x141A, 1} // Relay output function
	C027 = Register{0x141B, 1} // EO terminal function
	C028 = Register{0x141C, 1} // AM terminal function
	C030 = Register{0x141E, 1} // Current monitor reference value
	C031 = Register{0x141F, 1} // Multi-function output 11 type
	C032 = Register{0x1420, 1} // Multi-function output 12 type
	C036 = Register{0x1424, 1} // Relay output type
	C038 = Register{0x1426, 1} // Light load signal output mode
	C039 = Register{0x1427, 1} // Light load detection level
	C040 = Register{0x1428, 1} // Overload warning signal output mode
	C041 = Register{0x1429, 1} // Overload warning level
	C042 = Register{0x142A, 2} // Target frequency during acceleration
	C043 = Register{0x142C, 2} // Target frequency during deceleration
	C044 = Register{0x142E, 1} // PID deviation excessive level
	C045 = Register{0x142F, 2} // Target frequency during acceleration 2
	C046 = Register{0x1431, 2} // Target frequency during deceleration 2
	C047 = Register{0x1433, 1} // EO output pulse train scale conversion
	C052 = Register{0x1438, 1} // PID feedback upper limit
	C053 = Register{0x1439, 1} // PID feedback lower limit
	C054 = Register{0x143A, 1} // Torque mode selection
	C055 = Register{0x143B, 1} // Forward power running overtorque level
	C056 = Register{0x143C, 1} // Reverse regeneration overtorque level
	C057 = Register{0x143D, 1} // Reverse power running overtorque level
	C058 = Register{0x143E, 1} // Forward regeneration overtorque level
	C059 = Register{0x143F, 1} // Torque signal output mode
	C061 = Register{0x1441, 1} // Thermal warning level
	C063 = Register{0x1443, 1} // Zero Hz detection level
	C064 = Register{0x1444, 1} // Fin overheat warning level
	C071 = Register{0x144B, 1} // Baud rate
	C072 = Register{0x144C, 1} // Device id
	C074 = Register{0x144E, 1} // Communication parity
	C075 = Register{0x144F, 1} // Communication stop bits
	C076 = Register{0x1450, 1} // Communication error effect
	C077 = Register{0x1451, 1} // Communication error timeout
	C078 = Register{0x1452, 1} // Communication wait time
	C081 = Register{0x1455, 1} // O adjustment
	C082 = Register{0x1456, 1} // OI adjustment
	C085 = Register{0x1459, 1} // Thermistor adjustment
	C091 = Register{0x145F, 1} // Debug mode
	C096 = Register{0x1464, 1} // Communication selection
	C098 = Register{0x1466, 1} // EzCOM master start address
	C099 = Register{0x1467, 1} // EzCOM master end address
	C100 = Register{0x1468, 1} // EzCOM starting trigger
	C101 = Register{0x1469, 1} // Up/Down button setting
	C102 = Register{0x146A, 1} // Reset button setting
	C103 = Register{0x146B, 1} // Restart frequency matching selection
	C104 = Register{0x146C, 1} // Up/Down button clear mode
	C105 = Register{0x146D, 1} // EO gain
	C106 = Register{0x146E, 1} // AM gain
	C109 = Register{0x1471, 1} // AM bias
	C111 = Register{0x1473, 1} // Overload warning level 2
	C130 = Register{0x1486, 1} // Output 11 on delay
	C131 = Register{0x1487, 1} // Output 11 off delay
	C132 = Register{0x1488, 1} // Output 12 on delay
	C133 = Register{0x1489, 1} // Output 12 off delay
	C140 = Register{0x1490, 1} // Relay output on delay
	C141 = Register{0x1491, 1} // Relay output off delay
	C142 = Register{0x1492, 1} // Logic output signal 1 selection 1
	C143 = Register{0x1493, 1} // Logic output signal 1 selection 2
	C144 = Register{0x1494, 1} // Logic output signal 1 operator selection
	C145 = Register{0x1495, 1} // Logic output signal 2 selection 1
	C146 = Register{0x1496, 1} // Logic output signal 2 selection 2
	C147 = Register{0x1497, 1} // Logic output signal 2 operator selection
	C148 = Register{0x1498, 1} // Logic output signal 3 selection 1
	C149 = Register{0x1499, 1} // Logic output signal 3 selection 2
	C150 = Register{0x149A, 1} // Logic output signal 3 operator selection
	C160 = Register{0x14A4, 1} // Input terminal response time 1
	C161 = Register{0x14A5, 1} // Input terminal response time 2
	C162 = Register{0x14A6, 1} // Input terminal response time 3
	C163 = Register{0x14A7, 1} // Input terminal response time 4
	C164 = Register{0x14A8, 1} // Input terminal response time 5
	C165 = Register{0x14A9, 1} // Input terminal response time 6
	C166 = Register{0x14AA, 1} // Input terminal response time 7
	C169 = Register{0x14AD, 1} // Multi-step speed/position determination time
)

// Group D, monitoring functions (datasheet sections 3-3 and B-4). The
// fault monitors D081 to D086 are the factor registers of their blocks,
// FaultMonitor addresses the remaining fields.
var (
	D001 = Register{0x1001, 2} // Output frequency
	D002 = Register{0x1003, 1} // Output current
	D003 = Register{0x1004, 1} // Rotation direction
	D004 = Register{0x1005, 2} // PID feedback value
	D005 = Register{0x1007, 1} // Multi-function inputs
	D006 = Register{0x1008, 1} // Multi-function outputs
	D007 = Register{0x1009, 2} // Converted output frequency
	D008 = Register{0x100B, 2} // Real frequency
	D009 = Register{0x100D, 1} // Torque reference
	D010 = Register{0x100E, 1} // Torque bias
	D012 = Register{0x1010, 1} // Output torque
	D013 = Register{0x1011, 1} // Output voltage
	D014 = Register{0x1012, 1} // Input power
	D015 = Register{0x1013, 2} // Watt-hour
	D016 = Register{0x1015, 2} // Total run time
	D017 = Register{0x1017, 2} // Power-on time
	D018 = Register{0x1019, 1} // Fin temperature
	D022 = Register{0x101D, 1} // Life assessment
	D023 = Register{0x101E, 1} // Program counter
	D024 = Register{0x101F, 1} // Program number
	D025 = Register{0x102E, 2} // Drive programming user monitor 0
	D026 = Register{0x1030, 2} // Drive programming user monitor 1
	D027 = Register{0x1032, 2} // Drive programming user monitor 2
	D029 = Register{0x1036, 2} // Position command
	D030 = Register{0x1038, 2} // Current position
	D060 = Register{0x1057, 1} // Inverter mode
	D062 = Register{0x1059, 1} // Frequency source
	D063 = Register{0x105A, 1} // Run source
	D080 = Register{0x0011, 1} // Fault frequency monitor
	D081 = Register{0x0012, 1} // Fault monitor 1 trip factor
	D082 = Register{0x001C, 1} // Fault monitor 2 trip factor
	D083 = Register{0x0026, 1} // Fault monitor 3 trip factor
	D084 = Register{0x0030, 1} // Fault monitor 4 trip factor
	D085 = Register{0x003A, 1} // Fault monitor 5 trip factor
	D086 = Register{0x0044, 1} // Fault monitor 6 trip factor
	D090 = Register{0x004E, 1} // Warning monitor
	D102 = Register{0x1026, 1} // DC voltage
	D103 = Register{0x1027, 1} // Regenerative braking load rate
	D104 = Register{0x1028, 1} // Electronic thermal monitor
	D130 = Register{0x10A1, 1} // Analog input O
	D131 = Register{0x10A2, 1} // Analog input OI
	D133 = Register{0x10A4, 1} // Pulse train input
	D153 = Register{0x10A6, 1} // PID deviation
	D155 = Register{0x10A8, 1} // PID output
)

// Group F, main profile parameters (datasheet sections 3-4 and B-4).
var (
	F001 = Register{0x0001, 2} // Output frequency setting
	F002 = Register{0x1103, 2} // Acceleration time 1
	F003 = Register{0x1105, 2} // Deceleration time 1
	F004 = Register{0x1107, 1} // Operator rotation direction
	F202 = Register{0x2103, 2} // Second motor acceleration time 1
	F203 = Register{0x2105, 2} // Second motor deceleration time 1
)

// Group H, motor constants functions (datasheet sections 3-8 and B-4).
var (
	H001 = Register{0x1501, 1} // Auto-tuning selection
	H002 = Register{0x1502, 1} // Motor parameter selection
	H003 = Register{0x1503, 1} // Motor capacity selection
	H004 = Register{0x1504, 1} // Motor pole number selection
	H005 = Register{0x1506, 1} // Speed response
	H006 = Register{0x1507, 1} // Stabilization parameter
	H020 = Register{0x1516, 1} // Motor parameter R1
	H021 = Register{0x1518, 1} // Motor parameter R2
	H022 = Register{0x151A, 1}
	H023 = Register{0x151C, 1} // Motor parameter Io
	H024 = Register{0x151D, 2} // Motor parameter J
	H030 = Register{0x1525, 1} // Auto-tuning parameter R1
	H031 = Register{0x1527, 1} // Auto-tuning parameter R2
	H032 = Register{0x1529, 1}
	H033 = Register{0x152B, 1} // Auto-tuning parameter Io
	H034 = Register{0x152C, 2} // Auto-tuning parameter J
	H050 = Register{0x153D, 1} // Slip compensation P gain
	H051 = Register{0x153E, 1} // Slip compensation I gain
	H102 = Register{0x1571, 1} // PM motor code selection
	H103 = Register{0x1572, 1} // PM motor capacity
	H104 = Register{0x1573, 1} // PM motor pole number selection
	H105 = Register{0x1574, 1} // PM rated current
	H106 = Register{0x1575, 1} // PM parameter R
	H107 = Register{0x1576, 1} // PM parameter Ld
	H108 = Register{0x1577, 1} // PM parameter Lq
	H109 = Register{0x1578, 1} // PM parameter Ke
	H110 = Register{0x1579, 2} // PM parameter J
	H111 = Register{0x157B, 1} // Auto-tuning PM parameter R
	H112 = Register{0x157C, 1} // Auto-tuning PM parameter Ld
	H113 = Register{0x157D, 1} // Auto-tuning PM parameter Lq
	H116 = Register{0x1581, 1} // PM speed response
	H117 = Register{0x1582, 1} // PM starting current
	H118 = Register{0x1583, 1} // PM starting time
	H119 = Register{0x1584, 1} // PM stabilization constant
	H121 = Register{0x1586, 1} // PM minimum frequency
	H122 = Register{0x1587, 1} // PM no-load current
	H123 = Register{0x1588, 1} // PM starting method
	H131 = Register{0x158A, 1} // PM IMPE 0V wait
	H132 = Register{0x158B, 1} // PM IMPE detect wait
	H133 = Register{0x158C, 1} // PM IMPE detect
	H134 = Register{0x158D, 1} // PM IMPE voltage gain
)

// Group P, expansion card and option parameters (datasheet sections 3-9
// and B-4).
var (
	P001 = Register{0x1601, 1} // Operation selection at option 1 error
	P003 = Register{0x1603, 1} // EA terminal function
	P004 = Register{0x1604, 1} // Pulse train input mode for feedback
	P011 = Register{0x160B, 1} // Encoder pulses
	P012 = Register{0x160C, 1} // Simple positioning
	P015 = Register{0x160F, 1} // Creep speed
	P017 = Register{0x1611, 1} // Positioning range
	P026 = Register{0x161A, 1} // Over-speed error detection level
	P027 = Register{0x161B, 1} // Speed deviation error detection level
	P031 = Register{0x161F, 1} // Acceleration/deceleration time input type
	P033 = Register{0x1621, 1} // Torque reference input selection
	P034 = Register{0x1622, 1} // Torque reference setting
	P036 = Register{0x1624, 1} // Torque bias mode
	P037 = Register{0x1625, 1} // Torque bias value
	P038 = Register{0x1626, 1} // Torque bias polarity selection
	P039 = Register{0x1627, 2} // Forward torque control speed limit value
	P040 = Register{0x1629, 2} // Reverse torque control speed limit value
	P041 = Register{0x162B, 1} // Speed/torque control switching time
	P044 = Register{0x162E, 1} // Network communication watchdog timer
	P045 = Register{0x162F, 1} // Communication error effect
	P046 = Register{0x1630, 1} // Instance number
	P048 = Register{0x1632, 1} // Operation setting in idle mode
	P049 = Register{0x1633, 1} // Polarity setting for rotation speed
	P055 = Register{0x1639, 1} // Pulse train frequency scale
	P056 = Register{0x163A, 1} // Pulse train frequency filter time constant
	P057 = Register{0x163B, 1} // Pulse train frequency bias amount
	P058 = Register{0x163C, 1} // Pulse train frequency limit
	P059 = Register{0x163D, 1} // Pulse input lower cut
	P060 = Register{0x163E, 2} // Multi-step position command 0
	P061 = Register{0x1640, 2} // Multi-step position command 1
	P062 = Register{0x1642, 2} // Multi-step position command 2
	P063 = Register{0x1644, 2} // Multi-step position command 3
	P064 = Register{0x1646, 2} // Multi-step position command 4
	P065 = Register{0x1648, 2} // Multi-step position command 5
	P066 = Register{0x164A, 2} // Multi-step position command 6
	P067 = Register{0x164C, 2} // Multi-step position command 7
	P068 = Register{0x164E, 1} // Zero-return mode
	P069 = Register{0x164F, 1} // Zero-return direction
	P070 = Register{0x1650, 1} // Low-speed zero-return frequency
	P071 = Register{0x1651, 1} // High-speed zero-return frequency
	P072 = Register{0x1652, 2} // Forward position range specification
	P073 = Register{0x1654, 2} // Reverse position range specification
	P075 = Register{0x1657, 1} // Positioning mode
	P077 = Register{0x1659, 1} // Encoder disconnection timeout
	P080 = Register{0x165C, 1} // Position restart range
	P081 = Register{0x165D, 1} // Save position at power off
	P082 = Register{0x165E, 1} // Current position at power off
	P083 = Register{0x1660, 1} // Preset position
	P100 = Register{0x1666, 1} // Drive program parameter U00
	P101 = Register{0x1667, 1} // Drive program parameter U01
	P102 = Register{0x1668, 1} // Drive program parameter U02
	P103 = Register{0x1669, 1} // Drive program parameter U03
	P104 = Register{0x166A, 1} // Drive program parameter U04
	P105 = Register{0x166B, 1} // Drive program parameter U05
	P106 = Register{0x166C, 1} // Drive program parameter U06
	P107 = Register{0x166D, 1} // Drive program parameter U07
	P108 = Register{0x166E, 1} // Drive program parameter U08
	P109 = Register{0x166F, 1} // Drive program parameter U09
	P110 = Register{0x1670, 1} // Drive program parameter U10
	P111 = Register{0x1671, 1} // Drive program parameter U11
	P112 = Register{0x1672, 1} // Drive program parameter U12
	P113 = Register{0x1673, 1} // Drive program parameter U13
	P114 = Register{0x1674, 1} // Drive program parameter U14
	P115 = Register{0x1675, 1} // Drive program parameter U15
	P116 = Register{0x1676, 1} // Drive program parameter U16
	P117 = Register{0x1677, 1} // Drive program parameter U17
	P118 = Register{0x1678, 1} // Drive program parameter U18
	P119 = Register{0x1679, 1} // Drive program parameter U19
	P120 = Register{0x167A, 1} // Drive program parameter U20
	P121 = Register{0x167B, 1} // Drive program parameter U21
	P122 = Register{0x167C, 1} // Drive program parameter U22
	P123 = Register{0x167D, 1} // Drive program parameter U23
	P124 = Register{0x167E, 1} // Drive program parameter U24
	P125 = Register{0x167F, 1} // Drive program parameter U25
	P126 = Register{0x1680, 1} // Drive program parameter U26
	P127 = Register{0x1681, 1} // Drive program parameter U27
	P128 = Register{0x1682, 1} // Drive program parameter U28
	P129 = Register{0x1683, 1} // Drive program parameter U29
	P130 = Register{0x1684, 1} // Drive program parameter U30
	P131 = Register{0x1685, 1} // Drive program parameter U31
	P140 = Register{0x168E, 1} // EzCOM data count
	P141 = Register{0x168F, 1} // EzCOM destination 1 address
	P142 = Register{0x1690, 1} // EzCOM destination 1 register
	P143 = Register{0x1691, 1} // EzCOM source 1 register
	P144 = Register{0x1692, 1} // EzCOM destination 2 address
	P145 = Register{0x1693, 1} // EzCOM destination 2 register
	P146 = Register{0x1694, 1} // EzCOM source 2 register
	P147 = Register{0x1695, 1} // EzCOM destination 3 address
	P148 = Register{0x1696, 1} // EzCOM destination 3 register
	P149 = Register{0x1697, 1} // EzCOM source 3 register
	P150 = Register{0x1698, 1} // EzCOM destination 4 address
	P151 = Register{0x1699, 1} // EzCOM destination 4 register
	P152 = Register{0x169A, 1} // EzCOM source 4 register
	P153 = Register{0x169B, 1} // EzCOM destination 5 address
	P154 = Register{0x169C, 1} // EzCOM destination 5 register
	P155 = Register{0x169D, 1} // EzCOM source 5 register
	P160 = Register{0x16A2, 1} // Option interface command write register 1
	P161 = Register{0x16A3, 1} // Option interface command write register 2
	P162 = Register{0x16A4, 1} // Option interface command write register 3
	P163 = Register{0x16A5, 1} // Option interface command write register 4
	P164 = Register{0x16A6, 1} // Option interface command write register 5
	P165 = Register{0x16A7, 1} // Option interface command write register 6
	P166 = Register{0x16A8, 1} // Option interface command write register 7
	P167 = Register{0x16A9, 1} // Option interface command write register 8
	P168 = Register{0x16AA, 1} // Option interface command write register 9
	P169 = Register{0x16AB, 1} // Option interface command write register 10
	P170 = Register{0x16AC, 1} // Option interface command read register 1
	P171 = Register{0x16AD, 1} // Option interface command read register 2
	P172 = Register{0x16AE, 1} // Option interface command read register 3
	P173 = Register{0x16AF, 1} // Option interface command read register 4
	P174 = Register{0x16B0, 1} // Option interface command read register 5
	P175 = Register{0x16B1, 1} // Option interface command read register 6
	P176 = Register{0x16B2, 1} // Option interface command read register 7
	P177 = Register{0x16B3, 1} // Option interface command read register 8
	P178 = Register{0x16B4, 1} // Option interface command read register 9
	P179 = Register{0x16B5, 1} // Option interface command read register 10
	P180 = Register{0x16B6, 1} // Profibus node address
	P181 = Register{0x16B7, 1} // Profibus clear mode
	P182 = Register{0x16B8, 1} // Profibus map selection
	P185 = Register{0x16BB, 1} // CANopen node address
	P186 = Register{0x16BC, 1} // CANopen communication speed
	P190 = Register{0x16C0, 1} // CompoNet node address
	P192 = Register{0x16C2, 1} // DeviceNet node address
	P200 = Register{0x16C8, 1} // Serial communication mode
	P201 = Register{0x16C9, 1} // Modbus external register 1
	P202 = Register{0x16CA, 1} // Modbus external register 2
	P203 = Register{0x16CB, 1} // Modbus external register 3
	P204 = Register{0x16CC, 1} // Modbus external register 4
	P205 = Register{0x16CD, 1} // Modbus external register 5
	P206 = Register{0x16CE, 1} // Modbus external register 6
	P207 = Register{0x16CF, 1} // Modbus external register 7
	P208 = Register{0x16D0, 1} // Modbus external register 8
	P209 = Register{0x16D1, 1} // Modbus external register 9
	P210 = Register{0x16D2, 1} // Modbus external register 10
	P211 = Register{0x16D3, 1} // Modbus register format 1
	P212 = Register{0x16D4, 1} // Modbus register format 2
	P213 = Register{0x16D5, 1} // Modbus register format 3
	P214 = Register{0x16D6, 1} // Modbus register format 4
	P215 = Register{0x16D7, 1} // Modbus register format 5
	P216 = Register{0x16D8, 1} // Modbus register format 6
	P217 = Register{0x16D9, 1} // Modbus register format 7
	P218 = Register{0x16DA, 1} // Modbus register format 8
	P219 = Register{0x16DB, 1} // Modbus register format 9
	P220 = Register{0x16DC, 1} // Modbus register format 10
	P221 = Register{0x16DD, 1} // Modbus register scaling 1
	P222 = Register{0x16DE, 1} // Modbus register scaling 2
	P223 = Register{0x16DF, 1} // Modbus register scaling 3
	P224 = Register{0x16E0, 1} // Modbus register scaling 4
	P225 = Register{0x16E1, 1} // Modbus register scaling 5
	P226 = Register{0x16E2, 1} // Modbus register scaling 6
	P227 = Register{0x16E3, 1} // Modbus register scaling 7
	P228 = Register{0x16E4, 1} // Modbus register scaling 8
	P229 = Register{0x16E5, 1} // Modbus register scaling 9
	P230 = Register{0x16E6, 1} // Modbus register scaling 10
	P301 = Register{0x16E7, 1} // Modbus internal register 1
	P302 = Register{0x16E8, 1} // Modbus internal register 2
	P303 = Register{0x16E9, 1} // Modbus internal register 3
	P304 = Register{0x16EA, 1} // Modbus internal register 4
	P305 = Register{0x16EB, 1} // Modbus internal register 5
	P306 = Register{0x16EC, 1} // Modbus internal register 6
	P307 = Register{0x16ED, 1} // Modbus internal register 7
	P308 = Register{0x16EE, 1} // Modbus internal register 8
	P309 = Register{0x16EF, 1} // Modbus internal register 9
	P310 = Register{0x16F0, 1} // Modbus internal register 10
	P400 = Register{0x16F1, 1} // Modbus data endianness
)

// Second motor parameters, selected with the SET intelligent input
// (datasheet section B-4).
var (
	A201 = Register{0x2201, 1} // Frequency reference selection
	A202 = Register{0x2202, 1} // Run command selection
	A203 = Register{0x2203, 1} // Base frequency
	A204 = Register{0x2204, 1} // Maximum frequency
	A220 = Register{0x2216, 2} // Multi-step speed reference 0
	A241 = Register{0x223B, 1} // Torque boost selection
	A242 = Register{0x223C, 1} // Manual torque boost voltage
	A243 = Register{0x223D, 1} // Manual torque boost frequency
	A244 = Register{0x223E, 1} // V/f characteristics selection
	A245 = Register{0x223F, 1} // Output voltage gain
	A246 = Register{0x2240, 1} // Automatic torque boost voltage compensation gain
	A247 = Register{0x2241, 1} // Automatic torque boost slip compensation gain
	A261 = Register{0x224F, 2} // Frequency upper limit
	A262 = Register{0x2251, 2} // Frequency lower limit
	A281 = Register{0x2269, 1} // AVR selection
	A282 = Register{0x226A, 1} // AVR voltage selection
	A292 = Register{0x2274, 2} // Acceleration time 2
	A293 = Register{0x2276, 2} // Deceleration time 2
	A294 = Register{0x2278, 1} // Method to switch to Acc2/Dec2
	A295 = Register{0x2279, 2} // Acc1 to Acc2 frequency transition point
	A296 = Register{0x227B, 2} // Dec1 to Dec2 frequency transition point
	B212 = Register{0x230C, 1} // Electronic thermal level
	B213 = Register{0x230D, 1} // Electronic thermal characteristics selection
	B221 = Register{0x2316, 1} // Overload limit selection
	B222 = Register{0x2317, 1} // Overload limit level
	B223 = Register{0x2318, 1} // Overload limit parameter
	C241 = Register{0x2429, 1} // Overload warning level
	H202 = Register{0x2502, 1} // Motor parameter selection
	H203 = Register{0x2503, 1} // Motor capacity selection
	H204 = Register{0x2504, 1} // Motor pole number selection
	H205 = Register{0x2506, 1} // Speed response
	H220 = Register{0x2516, 1} // Motor parameter R1
	H221 = Register{0x2518, 1} // Motor parameter R2
	H222 = Register{0x251A, 1}
	H223 = Register{0x251C, 1} // Motor parameter Io
	H224 = Register{0x251D, 2} // Motor parameter J
	H230 = Register{0x2525, 1} // Auto-tuning parameter R1
	H231 = Register{0x2527, 1} // Auto-tuning parameter R2
	H232 = Register{0x2529, 1}
	H233 = Register{0x252B, 1} // Auto-tuning parameter Io
	H234 = Register{0x252C, 2} // Auto-tuning parameter J
)
