// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

// TIFF baseline, extension and private tags, and the EXIF and GPS private IFD tags.
var genericTags = []Tag{
	// Baseline.
	{ID: 254, Label: "NewSubfileType", Description: "A general indication of the kind of data contained in this subfile."},
	{ID: 255, Label: "SubfileType", Description: "A general indication of the kind of data contained in this subfile."},
	{ID: 256, Label: "ImageWidth", Description: "The number of columns in the image, i.e., the number of pixels per row."},
	{ID: 257, Label: "ImageLength", Description: "The number of rows of pixels in the image."},
	{ID: 258, Label: "BitsPerSample", Description: "Number of bits per component."},
	{ID: 259, Label: "Compression", Description: "Compression scheme used on the image data."},
	{ID: 262, Label: "PhotometricInterpretation", Description: "The color space of the image data."},
	{ID: 263, Label: "Threshholding", Description: "For black and white TIFF files that represent shades of gray, the technique used to convert from gray to black and white pixels."},
	{ID: 264, Label: "CellWidth", Description: "The width of the dithering or halftoning matrix used to create a dithered or halftoned bilevel file."},
	{ID: 265, Label: "CellLength", Description: "The length of the dithering or halftoning matrix used to create a dithered or halftoned bilevel file."},
	{ID: 266, Label: "FillOrder", Description: "The logical order of bits within a byte."},
	{ID: 269, Label: "DocumentName", Description: "The name of the document from which this image was scanned."},
	{ID: 270, Label: "ImageDescription", Description: "A string that describes the subject of the image."},
	{ID: 271, Label: "Make", Description: "The scanner manufacturer."},
	{ID: 272, Label: "Model", Description: "The scanner model name or number."},
	{ID: 273, Label: "StripOffsets", Description: "For each strip, the byte offset of that strip."},
	{ID: 274, Label: "Orientation", Description: "The orientation of the image with respect to the rows and columns."},
	{ID: 277, Label: "SamplesPerPixel", Description: "The number of components per pixel."},
	{ID: 278, Label: "RowsPerStrip", Description: "The number of rows per strip."},
	{ID: 279, Label: "StripByteCounts", Description: "For each strip, the number of bytes in the strip after compression."},
	{ID: 280, Label: "MinSampleValue", Description: "The minimum component value used."},
	{ID: 281, Label: "MaxSampleValue", Description: "The maximum component value used."},
	{ID: 282, Label: "XResolution", Description: "The number of pixels per ResolutionUnit in the ImageWidth direction."},
	{ID: 283, Label: "YResolution", Description: "The number of pixels per ResolutionUnit in the ImageLength direction."},
	{ID: 284, Label: "PlanarConfiguration", Description: "How the components of each pixel are stored."},
	{ID: 285, Label: "PageName", Description: "The name of the page from which this image was scanned."},
	{ID: 286, Label: "XPosition", Description: "X position of the image."},
	{ID: 287, Label: "YPosition", Description: "Y position of the image."},
	{ID: 288, Label: "FreeOffsets", Description: "For each string of contiguous unused bytes in a TIFF file, the byte offset of the string."},
	{ID: 289, Label: "FreeByteCounts", Description: "For each string of contiguous unused bytes in a TIFF file, the number of bytes in the string."},
	{ID: 290, Label: "GrayResponseUnit", Description: "The precision of the information contained in the GrayResponseCurve."},
	{ID: 291, Label: "GrayResponseCurve", Description: "For grayscale data, the optical density of each possible pixel value."},
	{ID: 292, Label: "T4Options", Description: "Options for Group 3 Fax compression."},
	{ID: 293, Label: "T6Options", Description: "Options for Group 4 Fax compression."},
	{ID: 296, Label: "ResolutionUnit", Description: "The unit of measurement for XResolution and YResolution."},
	{ID: 297, Label: "PageNumber", Description: "The page number of the page from which this image was scanned."},
	{ID: 301, Label: "TransferFunction", Description: "Describes a transfer function for the image in tabular style."},
	{ID: 305, Label: "Software", Description: "Name and version number of the software package(s) used to create the image."},
	{ID: 306, Label: "DateTime", Description: "Date and time of image creation."},
	{ID: 315, Label: "Artist", Description: "Person who created the image."},
	{ID: 316, Label: "HostComputer", Description: "The computer and/or operating system in use at the time of image creation."},
	{ID: 317, Label: "Predictor", Description: "A mathematical operator that is applied to the image data before an encoding scheme is applied."},
	{ID: 318, Label: "WhitePoint", Description: "The chromaticity of the white point of the image."},
	{ID: 319, Label: "PrimaryChromaticities", Description: "The chromaticities of the primaries of the image."},
	{ID: 320, Label: "ColorMap", Description: "A color map for palette color images."},
	{ID: 321, Label: "HalftoneHints", Description: "Conveys to the halftone function the range of gray levels within a colorimetrically-specified image that should retain tonal detail."},
	{ID: 322, Label: "TileWidth", Description: "The tile width in pixels. This is the number of columns in each tile."},
	{ID: 323, Label: "TileLength", Description: "The tile length (height) in pixels. This is the number of rows in each tile."},
	{ID: 324, Label: "TileOffsets", Description: "For each tile, the byte offset of that tile, as compressed and stored on disk."},
	{ID: 325, Label: "TileByteCounts", Description: "For each tile, the number of (compressed) bytes in that tile."},
	{ID: 326, Label: "BadFaxLines", Description: "Used in the TIFF-F standard, denotes the number of 'bad' scan lines encountered by the facsimile device."},
	{ID: 327, Label: "CleanFaxData", Description: "Used in the TIFF-F standard, indicates if 'bad' lines encountered during reception are stored in the data, or if 'bad' lines have been replaced by the receiver."},
	{ID: 328, Label: "ConsecutiveBadFaxLines", Description: "Used in the TIFF-F standard, denotes the maximum number of consecutive 'bad' scanlines received."},
	{ID: 330, Label: "SubIFDs", Description: "Offset to child IFDs."},
	{ID: 332, Label: "InkSet", Description: "The set of inks used in a separated (PhotometricInterpretation=5) image."},
	{ID: 333, Label: "InkNames", Description: "The name of each ink used in a separated image."},
	{ID: 334, Label: "NumberOfInks", Description: "The number of inks."},
	{ID: 336, Label: "DotRange", Description: "The component values that correspond to a 0% dot and 100% dot."},
	{ID: 337, Label: "TargetPrinter", Description: "A description of the printing environment for which this separation is intended."},
	{ID: 338, Label: "ExtraSamples", Description: "Description of extra components."},
	{ID: 339, Label: "SampleFormat", Description: "Specifies how to interpret each data sample in a pixel."},
	{ID: 340, Label: "SMinSampleValue", Description: "Specifies the minimum sample value."},
	{ID: 341, Label: "SMaxSampleValue", Description: "Specifies the maximum sample value."},
	{ID: 342, Label: "TransferRange", Description: "Expands the range of the TransferFunction."},
	{ID: 343, Label: "ClipPath", Description: "Mirrors the essentials of PostScript's path creation functionality."},
	{ID: 344, Label: "XClipPathUnits", Description: "The number of units that span the width of the image, in terms of integer ClipPath coordinates."},
	{ID: 345, Label: "YClipPathUnits", Description: "The number of units that span the height of the image, in terms of integer ClipPath coordinates."},
	{ID: 346, Label: "Indexed", Description: "Aims to broaden the support for indexed images to include support for any color space."},
	{ID: 347, Label: "JPEGTables", Description: "JPEG quantization and/or Huffman tables."},
	{ID: 351, Label: "OPIProxy", Description: "OPI-related."},
	{ID: 400, Label: "GlobalParametersIFD", Description: "Used in the TIFF-FX standard to point to an IFD containing tags that are globally applicable to the complete TIFF file."},
	{ID: 401, Label: "ProfileType", Description: "Used in the TIFF-FX standard, denotes the type of data stored in this file or IFD."},
	{ID: 402, Label: "FaxProfile", Description: "Used in the TIFF-FX standard, denotes the 'profile' that applies to this file."},
	{ID: 403, Label: "CodingMethods", Description: "Used in the TIFF-FX standard, indicates which coding methods are used in the file."},
	{ID: 404, Label: "VersionYear", Description: "Used in the TIFF-FX standard, denotes the year of the standard specified by the FaxProfile field."},
	{ID: 405, Label: "ModeNumber", Description: "Used in the TIFF-FX standard, denotes the mode of the standard specified by the FaxProfile field."},
	{ID: 433, Label: "Decode", Description: "Used in the TIFF-F and TIFF-FX standards, holds information about the ITULAB (PhotometricInterpretation = 10) encoding."},
	{ID: 434, Label: "DefaultImageColor", Description: "Defined in the Mixed Raster Content part of RFC 2301, is the default color needed in areas where no image is available."},
	{ID: 512, Label: "JPEGProc", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 513, Label: "JPEGInterchangeFormat", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 514, Label: "JPEGInterchangeFormatLength", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 515, Label: "JPEGRestartInterval", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 517, Label: "JPEGLosslessPredictors", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 518, Label: "JPEGPointTransforms", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 519, Label: "JPEGQTables", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 520, Label: "JPEGDCTables", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 521, Label: "JPEGACTables", Description: "Old-style JPEG compression field. TechNote2 invalidates this part of the specification."},
	{ID: 529, Label: "YCbCrCoefficients", Description: "The transformation from RGB to YCbCr image data."},
	{ID: 530, Label: "YCbCrSubSampling", Description: "Specifies the subsampling factors used for the chrominance components of a YCbCr image."},
	{ID: 531, Label: "YCbCrPositioning", Description: "Specifies the positioning of subsampled chrominance components relative to luminance samples."},
	{ID: 532, Label: "ReferenceBlackWhite", Description: "Specifies a pair of headroom and footroom image data values (codes) for each pixel component."},
	{ID: 559, Label: "StripRowCounts", Description: "Defined in the Mixed Raster Content part of RFC 2301, used to replace RowsPerStrip for IFDs with variable-sized strips."},
	{ID: 700, Label: "XMP", Description: "XML packet containing XMP metadata."},

	// Private.
	{ID: 18246, Label: "Rating", Description: "Ratings tag used by Windows."},
	{ID: 18249, Label: "RatingPercent", Description: "Ratings tag used by Windows, value in percent."},
	{ID: 32781, Label: "ImageID", Description: "OPI-related."},
	{ID: 32932, Label: "Wang Annotation", Description: "Annotation data, as used in 'Imaging for Windows'."},
	{ID: 33421, Label: "CFARepeatPatternDim", Description: "For camera raw files from sensors with CFA overlay."},
	{ID: 33422, Label: "CFAPattern", Description: "For camera raw files from sensors with CFA overlay."},
	{ID: 33423, Label: "BatteryLevel", Description: "Encodes camera battery level at time of image capture."},
	{ID: 33432, Label: "Copyright", Description: "Copyright notice."},
	{ID: 33434, Label: "ExposureTime", Description: "Exposure time, given in seconds."},
	{ID: 33437, Label: "FNumber", Description: "The F number."},
	{ID: 33445, Label: "MD FileTag", Description: "Specifies the pixel data format encoding in the Molecular Dynamics GEL file format."},
	{ID: 33446, Label: "MD ScalePixel", Description: "Specifies a scale factor in the Molecular Dynamics GEL file format."},
	{ID: 33447, Label: "MD ColorTable", Description: "Used to specify the conversion from 16bit to 8bit in the Molecular Dynamics GEL file format."},
	{ID: 33448, Label: "MD LabName", Description: "Name of the lab that scanned this file, as used in the Molecular Dynamics GEL file format."},
	{ID: 33449, Label: "MD SampleInfo", Description: "Information about the sample, as used in the Molecular Dynamics GEL file format."},
	{ID: 33450, Label: "MD PrepDate", Description: "Date the sample was prepared, as used in the Molecular Dynamics GEL file format."},
	{ID: 33451, Label: "MD PrepTime", Description: "Time the sample was prepared, as used in the Molecular Dynamics GEL file format."},
	{ID: 33452, Label: "MD FileUnits", Description: "Units for data in this file, as used in the Molecular Dynamics GEL file format."},
	{ID: 33550, Label: "ModelPixelScaleTag", Description: "Used in interchangeable GeoTIFF files."},
	{ID: 33723, Label: "IPTC/NAA", Description: "IPTC-NAA (International Press Telecommunications Council-Newspaper Association of America) metadata."},
	{ID: 33918, Label: "INGR Packet Data Tag", Description: "Intergraph Application specific storage."},
	{ID: 33919, Label: "INGR Flag Registers", Description: "Intergraph Application specific flags."},
	{ID: 33920, Label: "IrasB Transformation Matrix", Description: "Originally part of Intergraph's GeoTIFF tags, but likely understood by IrasB only."},
	{ID: 33922, Label: "ModelTiepointTag", Description: "Originally part of Intergraph's GeoTIFF tags, but now used in interchangeable GeoTIFF files."},
	{ID: 34264, Label: "ModelTransformationTag", Description: "Used in interchangeable GeoTIFF files."},
	{ID: 34377, Label: "Photoshop", Description: "Collection of Photoshop 'Image Resource Blocks'."},
	{ID: 34665, Label: "ExifIFD", Description: "A pointer to the Exif IFD."},
	{ID: 34675, Label: "ICC Profile", Description: "ICC profile data."},
	{ID: 34732, Label: "ImageLayer", Description: "Defined in the Mixed Raster Content part of RFC 2301, used to denote the particular function of this Image in the mixed raster scheme."},
	{ID: 34735, Label: "GeoKeyDirectoryTag", Description: "Used in interchangeable GeoTIFF files."},
	{ID: 34736, Label: "GeoDoubleParamsTag", Description: "Used in interchangeable GeoTIFF files."},
	{ID: 34737, Label: "GeoAsciiParamsTag", Description: "Used in interchangeable GeoTIFF files."},
	{ID: 34853, Label: "GPSIFD", Description: "A pointer to the Exif-related GPS Info IFD."},
	{ID: 34908, Label: "HylaFAX FaxRecvParams", Description: "Used by HylaFAX."},
	{ID: 34909, Label: "HylaFAX FaxSubAddress", Description: "Used by HylaFAX."},
	{ID: 34910, Label: "HylaFAX FaxRecvTime", Description: "Used by HylaFAX."},
	{ID: 37724, Label: "ImageSourceData", Description: "Used by Adobe Photoshop."},
	{ID: 40965, Label: "InteroperabilityIFD", Description: "A pointer to the Exif-related Interoperability IFD."},
	{ID: 42112, Label: "GDAL_METADATA", Description: "Used by the GDAL library, holds an XML list of name=value 'metadata' values about the image as a whole, and about specific samples."},
	{ID: 42113, Label: "GDAL_NODATA", Description: "Used by the GDAL library, contains an ASCII encoded nodata or background pixel value."},
	{ID: 50215, Label: "Oce Scanjob Description", Description: "Used in the Oce scanning process."},
	{ID: 50216, Label: "Oce Application Selector", Description: "Used in the Oce scanning process."},
	{ID: 50217, Label: "Oce Identification Number", Description: "Used in the Oce scanning process."},
	{ID: 50218, Label: "Oce ImageLogic Characteristics", Description: "Used in the Oce scanning process."},
	{ID: 50706, Label: "DNGVersion", Description: "Used in IFD 0 of DNG files."},
	{ID: 50707, Label: "DNGBackwardVersion", Description: "Used in IFD 0 of DNG files."},
	{ID: 50708, Label: "UniqueCameraModel", Description: "Used in IFD 0 of DNG files."},
	{ID: 50709, Label: "LocalizedCameraModel", Description: "Used in IFD 0 of DNG files."},
	{ID: 50710, Label: "CFAPlaneColor", Description: "Used in Raw IFD of DNG files."},
	{ID: 50711, Label: "CFALayout", Description: "Used in Raw IFD of DNG files."},
	{ID: 50712, Label: "LinearizationTable", Description: "Used in Raw IFD of DNG files."},
	{ID: 50713, Label: "BlackLevelRepeatDim", Description: "Used in Raw IFD of DNG files."},
	{ID: 50714, Label: "BlackLevel", Description: "Used in Raw IFD of DNG files."},
	{ID: 50715, Label: "BlackLevelDeltaH", Description: "Used in Raw IFD of DNG files."},
	{ID: 50716, Label: "BlackLevelDeltaV", Description: "Used in Raw IFD of DNG files."},
	{ID: 50717, Label: "WhiteLevel", Description: "Used in Raw IFD of DNG files."},
	{ID: 50718, Label: "DefaultScale", Description: "Used in Raw IFD of DNG files."},
	{ID: 50719, Label: "DefaultCropOrigin", Description: "Used in Raw IFD of DNG files."},
	{ID: 50720, Label: "DefaultCropSize", Description: "Used in Raw IFD of DNG files."},
	{ID: 50721, Label: "ColorMatrix1", Description: "Used in IFD 0 of DNG files."},
	{ID: 50722, Label: "ColorMatrix2", Description: "Used in IFD 0 of DNG files."},
	{ID: 50723, Label: "CameraCalibration1", Description: "Used in IFD 0 of DNG files."},
	{ID: 50724, Label: "CameraCalibration2", Description: "Used in IFD 0 of DNG files."},
	{ID: 50725, Label: "ReductionMatrix1", Description: "Used in IFD 0 of DNG files."},
	{ID: 50726, Label: "ReductionMatrix2", Description: "Used in IFD 0 of DNG files."},
	{ID: 50727, Label: "AnalogBalance", Description: "Used in IFD 0 of DNG files."},
	{ID: 50728, Label: "AsShotNeutral", Description: "Used in IFD 0 of DNG files."},
	{ID: 50729, Label: "AsShotWhiteXY", Description: "Used in IFD 0 of DNG files."},
	{ID: 50730, Label: "BaselineExposure", Description: "Used in IFD 0 of DNG files."},
	{ID: 50731, Label: "BaselineNoise", Description: "Used in IFD 0 of DNG files."},
	{ID: 50732, Label: "BaselineSharpness", Description: "Used in IFD 0 of DNG files."},
	{ID: 50733, Label: "BayerGreenSplit", Description: "Used in Raw IFD of DNG files."},
	{ID: 50734, Label: "LinearResponseLimit", Description: "Used in IFD 0 of DNG files."},
	{ID: 50735, Label: "CameraSerialNumber", Description: "Used in IFD 0 of DNG files."},
	{ID: 50736, Label: "LensInfo", Description: "Used in IFD 0 of DNG files."},
	{ID: 50737, Label: "ChromaBlurRadius", Description: "Used in Raw IFD of DNG files."},
	{ID: 50738, Label: "AntiAliasStrength", Description: "Used in Raw IFD of DNG files."},
	{ID: 50740, Label: "DNGPrivateData", Description: "Used in IFD 0 of DNG files."},
	{ID: 50741, Label: "MakerNoteSafety", Description: "Used in IFD 0 of DNG files."},
	{ID: 50778, Label: "CalibrationIlluminant1", Description: "Used in IFD 0 of DNG files."},
	{ID: 50779, Label: "CalibrationIlluminant2", Description: "Used in IFD 0 of DNG files."},
	{ID: 50780, Label: "BestQualityScale", Description: "Used in Raw IFD of DNG files."},
	{ID: 50784, Label: "Alias Layer Metadata", Description: "Alias Sketchbook Pro layer usage description."},

	// Exif IFD.
	{ID: 34850, Label: "ExposureProgram", Description: "The class of the program used by the camera to set exposure when the picture is taken."},
	{ID: 34852, Label: "SpectralSensitivity", Description: "Indicates the spectral sensitivity of each channel of the camera used."},
	{ID: 34855, Label: "ISOSpeedRatings", Description: "Indicates the ISO Speed and ISO Latitude of the camera or input device as specified in ISO 12232."},
	{ID: 34856, Label: "OECF", Description: "Indicates the Opto-Electric Conversion Function (OECF) specified in ISO 14524."},
	{ID: 34864, Label: "SensitivityType", Description: "Indicates which one of the parameters of ISO12232 is used for PhotographicSensitivity."},
	{ID: 34866, Label: "RecommendedExposureIndex", Description: "Indicates the recommended exposure index value of the camera."},
	{ID: 36864, Label: "ExifVersion", Description: "The version of the supported Exif standard."},
	{ID: 36867, Label: "DateTimeOriginal", Description: "The date and time when the original image data was generated."},
	{ID: 36868, Label: "DateTimeDigitized", Description: "The date and time when the image was stored as digital data."},
	{ID: 36880, Label: "OffsetTime", Description: "Time difference from Universal Time Coordinated including daylight saving time of DateTime tag."},
	{ID: 36881, Label: "OffsetTimeOriginal", Description: "Time difference from Universal Time Coordinated including daylight saving time of DateTimeOriginal tag."},
	{ID: 36882, Label: "OffsetTimeDigitized", Description: "Time difference from Universal Time Coordinated including daylight saving time of DateTimeDigitized tag."},
	{ID: 37121, Label: "ComponentsConfiguration", Description: "Specific to compressed data; specifies the channels and complements PhotometricInterpretation."},
	{ID: 37122, Label: "CompressedBitsPerPixel", Description: "Specific to compressed data; states the compressed bits per pixel."},
	{ID: 37377, Label: "ShutterSpeedValue", Description: "Shutter speed."},
	{ID: 37378, Label: "ApertureValue", Description: "The lens aperture."},
	{ID: 37379, Label: "BrightnessValue", Description: "The value of brightness."},
	{ID: 37380, Label: "ExposureBiasValue", Description: "The exposure bias."},
	{ID: 37381, Label: "MaxApertureValue", Description: "The smallest F number of the lens."},
	{ID: 37382, Label: "SubjectDistance", Description: "The distance to the subject, given in meters."},
	{ID: 37383, Label: "MeteringMode", Description: "The metering mode."},
	{ID: 37384, Label: "LightSource", Description: "The kind of light source."},
	{ID: 37385, Label: "Flash", Description: "Indicates the status of flash when the image was shot."},
	{ID: 37386, Label: "FocalLength", Description: "The actual focal length of the lens, in mm."},
	{ID: 37396, Label: "SubjectArea", Description: "Indicates the location and area of the main subject in the overall scene."},
	{ID: 37500, Label: "MakerNote", Description: "Manufacturer specific information."},
	{ID: 37510, Label: "UserComment", Description: "Keywords or comments on the image; complements ImageDescription."},
	{ID: 37520, Label: "SubsecTime", Description: "A tag used to record fractions of seconds for the DateTime tag."},
	{ID: 37521, Label: "SubsecTimeOriginal", Description: "A tag used to record fractions of seconds for the DateTimeOriginal tag."},
	{ID: 37522, Label: "SubsecTimeDigitized", Description: "A tag used to record fractions of seconds for the DateTimeDigitized tag."},
	{ID: 40960, Label: "FlashpixVersion", Description: "The Flashpix format version supported by a FPXR file."},
	{ID: 40961, Label: "ColorSpace", Description: "The color space information tag is always recorded as the color space specifier."},
	{ID: 40962, Label: "PixelXDimension", Description: "Specific to compressed data; the valid width of the meaningful image."},
	{ID: 40963, Label: "PixelYDimension", Description: "Specific to compressed data; the valid height of the meaningful image."},
	{ID: 40964, Label: "RelatedSoundFile", Description: "Used to record the name of an audio file related to the image data."},
	{ID: 41483, Label: "FlashEnergy", Description: "Indicates the strobe energy at the time the image is captured, as measured in Beam Candle Power Seconds."},
	{ID: 41484, Label: "SpatialFrequencyResponse", Description: "Records the camera or input device spatial frequency table and SFR values in the direction of image width, image height, and diagonal direction, as specified in ISO 12233."},
	{ID: 41486, Label: "FocalPlaneXResolution", Description: "Indicates the number of pixels in the image width (X) direction per FocalPlaneResolutionUnit on the camera focal plane."},
	{ID: 41487, Label: "FocalPlaneYResolution", Description: "Indicates the number of pixels in the image height (Y) direction per FocalPlaneResolutionUnit on the camera focal plane."},
	{ID: 41488, Label: "FocalPlaneResolutionUnit", Description: "Indicates the unit for measuring FocalPlaneXResolution and FocalPlaneYResolution."},
	{ID: 41492, Label: "SubjectLocation", Description: "Indicates the location of the main subject in the scene."},
	{ID: 41493, Label: "ExposureIndex", Description: "Indicates the exposure index selected on the camera or input device at the time the image is captured."},
	{ID: 41495, Label: "SensingMethod", Description: "Indicates the image sensor type on the camera or input device."},
	{ID: 41728, Label: "FileSource", Description: "Indicates the image source."},
	{ID: 41729, Label: "SceneType", Description: "Indicates the type of scene."},
	{ID: 41730, Label: "ExifCFAPattern", Description: "Indicates the color filter array (CFA) geometric pattern of the image sensor when a one-chip color area sensor is used."},
	{ID: 41985, Label: "CustomRendered", Description: "Indicates the use of special processing on image data, such as rendering geared to output."},
	{ID: 41986, Label: "ExposureMode", Description: "Indicates the exposure mode set when the image was shot."},
	{ID: 41987, Label: "WhiteBalance", Description: "Indicates the white balance mode set when the image was shot."},
	{ID: 41988, Label: "DigitalZoomRatio", Description: "Indicates the digital zoom ratio when the image was shot."},
	{ID: 41989, Label: "FocalLengthIn35mmFilm", Description: "Indicates the equivalent focal length assuming a 35mm film camera, in mm."},
	{ID: 41990, Label: "SceneCaptureType", Description: "Indicates the type of scene that was shot."},
	{ID: 41991, Label: "GainControl", Description: "Indicates the degree of overall image gain adjustment."},
	{ID: 41992, Label: "Contrast", Description: "Indicates the direction of contrast processing applied by the camera when the image was shot."},
	{ID: 41993, Label: "Saturation", Description: "Indicates the direction of saturation processing applied by the camera when the image was shot."},
	{ID: 41994, Label: "Sharpness", Description: "Indicates the direction of sharpness processing applied by the camera when the image was shot."},
	{ID: 41995, Label: "DeviceSettingDescription", Description: "This tag indicates information on the picture-taking conditions of a particular camera model."},
	{ID: 41996, Label: "SubjectDistanceRange", Description: "Indicates the distance to the subject."},
	{ID: 42016, Label: "ImageUniqueID", Description: "Indicates an identifier assigned uniquely to each image."},
	{ID: 42032, Label: "CameraOwnerName", Description: "The name of the camera owner."},
	{ID: 42033, Label: "BodySerialNumber", Description: "The serial number of the camera body."},
	{ID: 42034, Label: "LensSpecification", Description: "The minimum and maximum focal length and F number of the lens."},
	{ID: 42035, Label: "LensMake", Description: "The lens manufacturer."},
	{ID: 42036, Label: "LensModel", Description: "The lens model name and model number."},
	{ID: 42037, Label: "LensSerialNumber", Description: "The serial number of the interchangeable lens."},

	// GPS IFD. Ids overlap the baseline range only below 254.
	{ID: 0, Label: "GPSVersionID", Description: "Indicates the version of GPSInfoIFD."},
	{ID: 1, Label: "GPSLatitudeRef", Description: "Indicates whether the latitude is north or south latitude."},
	{ID: 2, Label: "GPSLatitude", Description: "Indicates the latitude."},
	{ID: 3, Label: "GPSLongitudeRef", Description: "Indicates whether the longitude is east or west longitude."},
	{ID: 4, Label: "GPSLongitude", Description: "Indicates the longitude."},
	{ID: 5, Label: "GPSAltitudeRef", Description: "Indicates the altitude used as the reference altitude."},
	{ID: 6, Label: "GPSAltitude", Description: "Indicates the altitude based on the reference in GPSAltitudeRef."},
	{ID: 7, Label: "GPSTimeStamp", Description: "Indicates the time as UTC (Coordinated Universal Time)."},
	{ID: 8, Label: "GPSSatellites", Description: "Indicates the GPS satellites used for measurements."},
	{ID: 9, Label: "GPSStatus", Description: "Indicates the status of the GPS receiver when the image is recorded."},
	{ID: 10, Label: "GPSMeasureMode", Description: "Indicates the GPS measurement mode."},
	{ID: 11, Label: "GPSDOP", Description: "Indicates the GPS DOP (data degree of precision)."},
	{ID: 12, Label: "GPSSpeedRef", Description: "Indicates the unit used to express the GPS receiver speed of movement."},
	{ID: 13, Label: "GPSSpeed", Description: "Indicates the speed of GPS receiver movement."},
	{ID: 14, Label: "GPSTrackRef", Description: "Indicates the reference for giving the direction of GPS receiver movement."},
	{ID: 15, Label: "GPSTrack", Description: "Indicates the direction of GPS receiver movement."},
	{ID: 16, Label: "GPSImgDirectionRef", Description: "Indicates the reference for giving the direction of the image when it is captured."},
	{ID: 17, Label: "GPSImgDirection", Description: "Indicates the direction of the image when it was captured."},
	{ID: 18, Label: "GPSMapDatum", Description: "Indicates the geodetic survey data used by the GPS receiver."},
	{ID: 19, Label: "GPSDestLatitudeRef", Description: "Indicates whether the latitude of the destination point is north or south latitude."},
	{ID: 20, Label: "GPSDestLatitude", Description: "Indicates the latitude of the destination point."},
	{ID: 21, Label: "GPSDestLongitudeRef", Description: "Indicates whether the longitude of the destination point is east or west longitude."},
	{ID: 22, Label: "GPSDestLongitude", Description: "Indicates the longitude of the destination point."},
	{ID: 23, Label: "GPSDestBearingRef", Description: "Indicates the reference used for giving the bearing to the destination point."},
	{ID: 24, Label: "GPSDestBearing", Description: "Indicates the bearing to the destination point."},
	{ID: 25, Label: "GPSDestDistanceRef", Description: "Indicates the unit used to express the distance to the destination point."},
	{ID: 26, Label: "GPSDestDistance", Description: "Indicates the distance to the destination point."},
	{ID: 27, Label: "GPSProcessingMethod", Description: "A character string recording the name of the method used for location finding."},
	{ID: 28, Label: "GPSAreaInformation", Description: "A character string recording the name of the GPS area."},
	{ID: 29, Label: "GPSDateStamp", Description: "A character string recording date and time information relative to UTC (Coordinated Universal Time)."},
	{ID: 30, Label: "GPSDifferential", Description: "Indicates whether differential correction is applied to the GPS receiver."},
}
